package models

// GenerationEvent is published after a generated image is persisted.
type GenerationEvent struct {
	EventID        string `json:"event_id"`        // Unique event identifier
	UserID         string `json:"user_id"`         // Owner of the image
	ImageKey       string `json:"image_key"`       // Key in the generated tier
	GenerationDate string `json:"generation_date"` // Calendar day (YYYY-MM-DD)
	Mode           string `json:"mode"`            // Mode used
	GeneratedAtMs  int64  `json:"generated_at_ms"` // Epoch milliseconds
	Override       bool   `json:"override"`        // Produced by an operator override run
}
