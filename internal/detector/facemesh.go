package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FaceMesh is a client for the external face-mesh detection service.
// The service loads its model once per process; the client mirrors that with
// a lazy warm-up on first use that retries until the model is up.
type FaceMesh struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger

	mu    sync.Mutex
	ready bool
}

// faceMeshResponse is the JSON payload returned by the detection endpoint.
type faceMeshResponse struct {
	Detected  bool        `json:"detected"`
	Score     float64     `json:"score"`
	Landmarks [][]float64 `json:"landmarks"`
	Reason    string      `json:"reason"`
}

// NewFaceMesh creates a face-mesh client. The model is not loaded until the
// first Detect call (or an explicit Init).
func NewFaceMesh(baseURL string, timeout time.Duration, log zerolog.Logger) *FaceMesh {
	return &FaceMesh{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "facemesh").Logger(),
	}
}

// Name returns the provider name.
func (f *FaceMesh) Name() string {
	return "facemesh"
}

// Ready reports whether the remote model finished loading.
func (f *FaceMesh) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready
}

// Init warms up the remote model. Only success latches: a failed warm-up is
// retried on the next call, so a detector service that starts slower than
// this process becomes usable once it is up. Calls after the first success
// are no-ops. First load can take seconds; concurrent calls serialize so
// only one warm-up request is in flight at a time.
func (f *FaceMesh) Init(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ready {
		return nil
	}

	start := time.Now()
	if err := f.warmUp(ctx); err != nil {
		f.log.Warn().Err(err).Msg("model warm-up failed")
		return ErrNotReady
	}
	f.ready = true
	f.log.Info().Dur("took", time.Since(start)).Msg("model ready")
	return nil
}

// warmUp asks the service to load its model.
func (f *FaceMesh) warmUp(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/warmup", nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach detector service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("warm-up failed with status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}
	return nil
}

// Detect sends image bytes to the detection service and normalizes the
// response. A detection with a wrong landmark count is folded into an absent
// result so partial sets never reach the classifiers.
func (f *FaceMesh) Detect(ctx context.Context, imageData []byte) (*Result, error) {
	if err := f.Init(ctx); err != nil {
		return &Result{Present: false, Reason: ReasonModelUnavailable}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/detect", bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Error().Err(err).Msg("detection request failed")
		return &Result{Present: false, Reason: ReasonModelUnavailable}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detection failed with status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	var payload faceMeshResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("could not unmarshal response: %w", err)
	}

	if !payload.Detected {
		return &Result{Present: false, Reason: ReasonNoFace}, nil
	}

	landmarks, err := convertLandmarks(payload.Landmarks)
	if err != nil {
		f.log.Warn().Err(err).Msg("discarding malformed detection")
		return &Result{Present: false, Reason: ReasonNoFace}, nil
	}

	return &Result{
		Present:   true,
		Landmarks: landmarks,
		Score:     payload.Score,
	}, nil
}

// convertLandmarks validates the raw point list and converts it to the
// fixed-topology landmark set.
func convertLandmarks(raw [][]float64) ([]Landmark, error) {
	if len(raw) != LandmarkCount {
		return nil, fmt.Errorf("expected %d landmarks, got %d", LandmarkCount, len(raw))
	}

	landmarks := make([]Landmark, LandmarkCount)
	for i, p := range raw {
		if len(p) < 3 {
			return nil, fmt.Errorf("landmark %d has %d coordinates, want 3", i, len(p))
		}
		landmarks[i] = Landmark{X: p[0], Y: p[1], Z: p[2]}
	}
	return landmarks, nil
}

// readErrorBody reads up to 1KB of an error response body for diagnostics.
func readErrorBody(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 1024))
	if err != nil {
		return "<unreadable body>"
	}
	return strings.TrimSpace(string(body))
}
