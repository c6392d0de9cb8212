package facades

import (
	"context"
	"hash/fnv"
	"image"
	"image/color"
	"math"

	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
	"github.com/sbilibin2017/motiv8-batch/internal/raster"
)

// StubEmbeddingSize matches the length of real face embeddings.
const StubEmbeddingSize = 512

var stubBackdrop = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// StubInference produces deterministic placeholder artifacts so the pipeline can
// run without an inference sidecar. It is always ready.
type StubInference struct{}

func NewStubInference() *StubInference {
	return &StubInference{}
}

func (s *StubInference) Start(ctx context.Context) error {
	logger.Log.Warnw("inference running in stub mode")
	return nil
}

func (s *StubInference) Ready() bool {
	return true
}

// ExtractEmbedding returns a unit vector seeded from the image bytes.
// Gender is left unreported.
func (s *StubInference) ExtractEmbedding(ctx context.Context, img []byte) (models.EmbeddingResult, error) {
	if len(img) == 0 {
		return models.EmbeddingResult{Error: "empty image"}, ErrNoFace
	}

	h := fnv.New64a()
	h.Write(img)
	seed := h.Sum64()

	v := make([]float32, StubEmbeddingSize)
	var norm float64
	for i := range v {
		seed = seed*6364136223846793005 + 1442695040888963407
		x := float64(int64(seed>>11))/float64(1<<52) - 1
		v[i] = float32(x)
		norm += x * x
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}

	return models.EmbeddingResult{
		Success:     true,
		Embedding:   v,
		BoundingBox: []float64{0, 0, 1, 1},
		FaceCount:   1,
	}, nil
}

// Synthesize returns a flat scene for unconditioned requests and a figure on the
// neutral backdrop for conditioned ones.
func (s *StubInference) Synthesize(ctx context.Context, req models.SynthesisRequest) (image.Image, error) {
	w, h := req.Width, req.Height
	if w <= 0 || h <= 0 {
		w, h = 512, 768
	}

	c := promptColor(req.Prompt)
	if !req.Conditioned() {
		return raster.Solid(w, h, c), nil
	}

	img := raster.Solid(w, h, stubBackdrop)
	for y := h / 4; y < h*3/4; y++ {
		for x := w / 3; x < w*2/3; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// RemoveBackground keys out the neutral backdrop color.
func (s *StubInference) RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if px.R == stubBackdrop.R && px.G == stubBackdrop.G && px.B == stubBackdrop.B {
				px.A = 0
			}
			out.SetNRGBA(x, y, px)
		}
	}
	return out, nil
}

func promptColor(prompt string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(prompt))
	sum := h.Sum32()
	c := color.RGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 255}
	if c.R == stubBackdrop.R && c.G == stubBackdrop.G && c.B == stubBackdrop.B {
		c.R++
	}
	return c
}
