package services

import (
	"context"
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
	"github.com/sbilibin2017/motiv8-batch/internal/raster"
)

//go:generate mockgen -source=compositor.go -destination=compositor_mock_test.go -package=services

// BackgroundRemover is the background removal capability.
type BackgroundRemover interface {
	RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) // Returns img with a transparent background
}

// CompositorService produces a user's final image.
type CompositorService struct {
	synth   ImageSynthesizer
	remover BackgroundRemover
	prompts PromptBuilder
	params  SynthesisParams
	seed    func() int64
}

// NewCompositorService creates a new CompositorService.
func NewCompositorService(synth ImageSynthesizer, remover BackgroundRemover, prompts PromptBuilder, params SynthesisParams) *CompositorService {
	return &CompositorService{
		synth:   synth,
		remover: remover,
		prompts: prompts,
		params:  params,
		seed:    rand.Int64,
	}
}

// Compose runs the two-stage protocol when in.Background is set (person on a
// neutral backdrop, background removal, alpha composite) and a single
// conditioned generation otherwise. The result is opaque.
func (s *CompositorService) Compose(ctx context.Context, in models.ComposeInput) (image.Image, error) {
	if len(in.Embedding) == 0 {
		return nil, ErrMissingEmbedding
	}

	gender, _ := in.User.KnownGender()
	set := s.prompts.Build(in.Day, in.User.EffectiveMode(), gender)

	if in.Background == nil {
		return s.singleStage(ctx, in, set)
	}
	return s.twoStage(ctx, in, set)
}

func (s *CompositorService) conditioned(prompt models.Prompt, in models.ComposeInput) models.SynthesisRequest {
	req := s.params.request(prompt, s.seed())
	req.Embedding = in.Embedding
	req.ReferenceImage = in.SourcePhoto
	req.Scale = s.params.FaceIDScale
	return req
}

func (s *CompositorService) twoStage(ctx context.Context, in models.ComposeInput, set models.PromptSet) (image.Image, error) {
	logger.Log.Infow("generating foreground",
		"user_id", in.User.UserID,
		"mode", set.Mode,
		"creature", set.Creature,
		"reference", len(in.SourcePhoto) > 0,
	)

	fg, err := s.synth.Synthesize(ctx, s.conditioned(set.Person, in))
	if err != nil {
		return nil, fmt.Errorf("generate foreground: %w", err)
	}

	cut, err := s.remover.RemoveBackground(ctx, fg)
	if err != nil {
		return nil, fmt.Errorf("remove background: %w", err)
	}

	return raster.AlphaComposite(in.Background, cut), nil
}

func (s *CompositorService) singleStage(ctx context.Context, in models.ComposeInput, set models.PromptSet) (image.Image, error) {
	logger.Log.Infow("generating single-stage image", "user_id", in.User.UserID, "mode", set.Mode, "creature", set.Creature)

	img, err := s.synth.Synthesize(ctx, s.conditioned(set.Combined, in))
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}

	return raster.Flatten(img), nil
}
