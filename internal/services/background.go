package services

import (
	"context"
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
)

//go:generate mockgen -source=background.go -destination=background_mock_test.go -package=services

// ImageSynthesizer is the image synthesis capability.
type ImageSynthesizer interface {
	Synthesize(ctx context.Context, req models.SynthesisRequest) (image.Image, error) // Generates one image
}

// PromptBuilder produces the prompts for a day.
type PromptBuilder interface {
	Background(day models.DayContext) models.Prompt                                       // Empty-scene prompt shared by the run
	Build(day models.DayContext, mode models.Mode, gender models.Gender) models.PromptSet // Per-user prompts
}

// SynthesisParams are the fixed generation settings.
type SynthesisParams struct {
	Steps         int
	GuidanceScale float64
	Width         int
	Height        int
	FaceIDScale   float64
}

// DefaultSynthesisParams returns portrait generation defaults.
func DefaultSynthesisParams() SynthesisParams {
	return SynthesisParams{
		Steps:         30,
		GuidanceScale: 7.5,
		Width:         512,
		Height:        768,
		FaceIDScale:   0.8,
	}
}

func (p SynthesisParams) request(prompt models.Prompt, seed int64) models.SynthesisRequest {
	return models.SynthesisRequest{
		Prompt:         prompt.Positive,
		NegativePrompt: prompt.Negative,
		Steps:          p.Steps,
		GuidanceScale:  p.GuidanceScale,
		Seed:           &seed,
		Width:          p.Width,
		Height:         p.Height,
	}
}

// BackgroundService generates the one background shared by every user in a run.
type BackgroundService struct {
	synth   ImageSynthesizer
	prompts PromptBuilder
	params  SynthesisParams
	seed    func() int64
}

// NewBackgroundService creates a new BackgroundService.
func NewBackgroundService(synth ImageSynthesizer, prompts PromptBuilder, params SynthesisParams) *BackgroundService {
	return &BackgroundService{synth: synth, prompts: prompts, params: params, seed: rand.Int64}
}

// Generate calls the synthesis capability once for the day's scene.
// Any failure wraps ErrBackgroundFailed.
func (s *BackgroundService) Generate(ctx context.Context, day models.DayContext) (image.Image, error) {
	prompt := s.prompts.Background(day)

	logger.Log.Infow("generating shared background", "date", day.ISODate(), "prompt", prompt.Positive)

	img, err := s.synth.Synthesize(ctx, s.params.request(prompt, s.seed()))
	if err != nil {
		logger.Log.Errorw("shared background generation failed", "date", day.ISODate(), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBackgroundFailed, err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: empty image", ErrBackgroundFailed)
	}

	logger.Log.Infow("shared background generated", "date", day.ISODate(), "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}
