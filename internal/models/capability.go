package models

import "image"

// EmbeddingResult is the response of the embedding extraction capability.
type EmbeddingResult struct {
	Success     bool      `json:"success"`
	Embedding   []float32 `json:"embedding"`
	Gender      string    `json:"gender"`
	BoundingBox []float64 `json:"bbox"`
	FaceCount   int       `json:"num_faces"`
	Error       string    `json:"error,omitempty"`
}

// SynthesisRequest is the input of the image synthesis capability.
// A nil Embedding requests unconditioned (background) generation.
type SynthesisRequest struct {
	Prompt         string    `json:"prompt"`
	NegativePrompt string    `json:"negative_prompt"`
	Steps          int       `json:"num_inference_steps"`
	GuidanceScale  float64   `json:"guidance_scale"`
	Seed           *int64    `json:"seed,omitempty"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	Scale          float64   `json:"scale,omitempty"`
	Embedding      []float32 `json:"embedding,omitempty"`
	ReferenceImage []byte    `json:"reference_image,omitempty"`
}

// Conditioned reports whether the request carries a face embedding.
func (r SynthesisRequest) Conditioned() bool {
	return len(r.Embedding) > 0
}

// Prompt is a positive/negative prompt pair.
type Prompt struct {
	Positive string
	Negative string
}

// PromptSet holds every prompt a user's generation may need.
type PromptSet struct {
	Mode       Mode
	Creature   string // furry mode only
	Person     Prompt // foreground on a neutral backdrop
	Background Prompt // empty scene, no people
	Combined   Prompt // single-stage person in scene
}

// ComposeInput carries everything the compositor needs for one user.
type ComposeInput struct {
	User        UserDB
	Day         DayContext
	Embedding   []float32
	SourcePhoto []byte      // optional reference image
	Background  image.Image // nil selects single-stage generation
}
