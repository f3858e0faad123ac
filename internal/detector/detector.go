// Package detector wraps the external face-mesh landmark service.
// It is the only package that talks to the detection model; everything
// downstream works on already-extracted landmarks.
package detector

import (
	"context"
	"errors"
)

// LandmarkCount is the number of points in the face-mesh topology.
// A detection either carries exactly this many points or is treated as absent.
const LandmarkCount = 468

// Landmark is a single normalized face-mesh point. X and Y are relative to
// image dimensions (0-1), Z is relative depth.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Reason explains why a detection came back without landmarks.
type Reason string

const (
	// ReasonNoFace means the detector ran but found no face. This is a normal
	// negative outcome, not a fault.
	ReasonNoFace Reason = "no_face"

	// ReasonModelUnavailable means the detection model failed to load or the
	// service could not be reached. Surfaced to users as a system fault.
	ReasonModelUnavailable Reason = "model_unavailable"
)

// ErrNotReady is returned when Detect is called before the model finished
// its one-time initialization and the warm-up failed.
var ErrNotReady = errors.New("detector model is not ready")

// Result is a normalized detection outcome: either Present with a full
// landmark set and a quality score, or absent with a reason.
type Result struct {
	Present   bool
	Reason    Reason
	Landmarks []Landmark
	// Score is the detector's own quality signal for the detection (0-1).
	Score float64
}

// Provider defines the interface for landmark detection backends.
// Implementations must be safe for concurrent use.
type Provider interface {
	Name() string
	// Detect runs face-mesh detection on encoded image bytes.
	// A missing face is reported through Result, not through error;
	// error is reserved for transport and protocol failures.
	Detect(ctx context.Context, imageData []byte) (*Result, error)
	// Ready reports whether the underlying model finished loading.
	Ready() bool
}
