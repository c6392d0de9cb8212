package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
	"github.com/sbilibin2017/motiv8-batch/internal/raster"
	"google.golang.org/grpc/health/grpc_health_v1"
)

var (
	// ErrNotReady is returned by capability calls made before Start succeeded.
	ErrNotReady = errors.New("inference capability not ready")
	// ErrNoFace is returned when extraction finds no face in the image.
	ErrNoFace = errors.New("no face detected in image")
)

// HealthService is the gRPC health service name probed by Start.
const HealthService = "motiv8.inference"

const (
	pathEmbed            = "/v1/faces/embed"
	pathGenerate         = "/v1/images/generate"
	pathRemoveBackground = "/v1/images/remove-background"
)

// InferenceFacade calls the embedding extraction, image synthesis and background
// removal capabilities of the inference sidecar over HTTP. Readiness is probed once
// through the sidecar's gRPC health service.
type InferenceFacade struct {
	httpClient *http.Client
	baseURL    string
	health     grpc_health_v1.HealthClient
	ready      atomic.Bool
}

// NewInferenceFacade creates a facade. health may be nil, in which case Start
// falls back to an HTTP GET of /healthz.
func NewInferenceFacade(baseURL string, timeout time.Duration, health grpc_health_v1.HealthClient) *InferenceFacade {
	return &InferenceFacade{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		health:     health,
	}
}

// Start probes the sidecar and marks the facade ready when it is serving.
func (f *InferenceFacade) Start(ctx context.Context) error {
	if f.health != nil {
		resp, err := f.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: HealthService})
		if err != nil {
			logger.Log.Errorw("inference health check failed", "error", err)
			return fmt.Errorf("%w: %v", ErrNotReady, err)
		}
		if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
			logger.Log.Warnw("inference not serving", "status", resp.GetStatus().String())
			return fmt.Errorf("%w: status %s", ErrNotReady, resp.GetStatus())
		}
	} else {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/healthz", nil)
		if err != nil {
			return err
		}
		resp, err := f.httpClient.Do(req)
		if err != nil {
			logger.Log.Errorw("inference health check failed", "error", err)
			return fmt.Errorf("%w: %v", ErrNotReady, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: http status %d", ErrNotReady, resp.StatusCode)
		}
	}

	f.ready.Store(true)
	logger.Log.Infow("inference capability ready", "url", f.baseURL)
	return nil
}

// Ready reports whether Start succeeded.
func (f *InferenceFacade) Ready() bool {
	return f.ready.Load()
}

type embedRequest struct {
	Image []byte `json:"image"`
}

// ExtractEmbedding detects the first face in img and returns its embedding.
// More than one face is logged and the first one is used.
func (f *InferenceFacade) ExtractEmbedding(ctx context.Context, img []byte) (models.EmbeddingResult, error) {
	var res models.EmbeddingResult
	if err := f.call(ctx, pathEmbed, embedRequest{Image: img}, &res); err != nil {
		return models.EmbeddingResult{}, err
	}

	if !res.Success {
		if res.FaceCount == 0 {
			return res, fmt.Errorf("%w: %s", ErrNoFace, res.Error)
		}
		return res, fmt.Errorf("extract embedding: %s", res.Error)
	}
	if len(res.Embedding) == 0 {
		return res, fmt.Errorf("extract embedding: empty vector")
	}
	if res.FaceCount > 1 {
		logger.Log.Warnw("multiple faces detected, using the first one", "faces", res.FaceCount)
	}

	return res, nil
}

type imageResponse struct {
	Success bool   `json:"success"`
	Image   []byte `json:"image"`
	Error   string `json:"error,omitempty"`
}

// Synthesize generates one image. Requests without an embedding produce unconditioned images.
func (f *InferenceFacade) Synthesize(ctx context.Context, req models.SynthesisRequest) (image.Image, error) {
	var res imageResponse
	if err := f.call(ctx, pathGenerate, req, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("synthesize: %s", res.Error)
	}
	return raster.Decode(res.Image)
}

// RemoveBackground returns img with a transparent background.
func (f *InferenceFacade) RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) {
	data, err := raster.EncodePNG(img)
	if err != nil {
		return nil, err
	}

	var res imageResponse
	if err := f.call(ctx, pathRemoveBackground, embedRequest{Image: data}, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("remove background: %s", res.Error)
	}
	return raster.Decode(res.Image)
}

func (f *InferenceFacade) call(ctx context.Context, path string, in, out any) error {
	if !f.Ready() {
		return ErrNotReady
	}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("inference request failed", "path", path, "error", err)
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	logger.Log.Infow("inference request completed", "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("call %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
