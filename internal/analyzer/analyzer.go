package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/constants"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/detector"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/imaging"
)

// User-facing messages. Guidance messages tell the user what to do;
// fault messages indicate a system problem they cannot fix by retrying
// with a better photo.
const (
	msgAnalyzed     = "analysis complete"
	msgNoFace       = "no face detected, please upload a clearer front-facing photo"
	msgModelUnavail = "analysis service unavailable, please try again later"
	msgBadLandmarks = "face could not be measured, please upload a clearer front-facing photo"
)

// Analyzer runs the full classification pipeline over one portrait.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	provider  detector.Provider
	geometry  GeometryThresholds
	color     ColorThresholds
	maxImgDim int
	log       zerolog.Logger
}

// New creates an Analyzer around an injected detector provider with the
// reference thresholds.
func New(provider detector.Provider, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		provider:  provider,
		geometry:  DefaultGeometryThresholds(),
		color:     DefaultColorThresholds(),
		maxImgDim: constants.MaxImageSize,
		log:       log.With().Str("component", "analyzer").Logger(),
	}
}

// WithThresholds overrides the classification thresholds. Intended for
// configuration wiring and tests.
func (a *Analyzer) WithThresholds(g GeometryThresholds, c ColorThresholds) *Analyzer {
	a.geometry = g
	a.color = c
	return a
}

// Analyze runs detection, geometry classification, skin-tone sampling and
// personal-color classification over encoded image bytes, producing one
// immutable FaceAnalysisResult. Detection failures are reported through the
// result (Detected=false), not through error; error is reserved for broken
// input such as undecodable images.
func (a *Analyzer) Analyze(ctx context.Context, imageData []byte) (*FaceAnalysisResult, error) {
	resized, err := imaging.ResizeToFit(imageData, a.maxImgDim)
	if err != nil {
		return nil, fmt.Errorf("preparing image: %w", err)
	}

	detection, err := a.provider.Detect(ctx, resized)
	if err != nil {
		return nil, fmt.Errorf("running detection: %w", err)
	}

	if !detection.Present {
		return a.undetected(detection.Reason), nil
	}

	shape, err := ClassifyFaceShape(detection.Landmarks, a.geometry)
	if err != nil {
		// Fail closed: a partial landmark set never yields a guessed shape.
		a.log.Warn().Err(err).Msg("detection discarded")
		result := a.undetected(detector.ReasonNoFace)
		result.Message = msgBadLandmarks
		return result, nil
	}

	tone := a.sampleTone(resized, detection.Landmarks)
	color := ClassifyPersonalColor(tone, a.color)

	return &FaceAnalysisResult{
		ID:            uuid.New(),
		Detected:      true,
		FaceShape:     shape,
		PersonalColor: color,
		Confidence:    clamp01(detection.Score),
		SkinTone:      &tone,
		Landmarks:     detection.Landmarks,
		Message:       msgAnalyzed,
		AnalyzedAt:    time.Now().UTC(),
	}, nil
}

// sampleTone decodes the prepared image and samples the skin tone. The image
// was already decoded once during resizing, so a decode failure here is
// unexpected; the neutral default keeps the pipeline going regardless.
func (a *Analyzer) sampleTone(imageData []byte, landmarks []detector.Landmark) SkinTone {
	img, err := imaging.Decode(imageData)
	if err != nil {
		a.log.Warn().Err(err).Msg("could not decode prepared image for sampling")
		return DefaultSkinTone()
	}
	return SampleSkinTone(img, landmarks)
}

// undetected builds a negative result with the user-facing message for the
// given reason. The invariant Detected=false => no classifications holds by
// construction.
func (a *Analyzer) undetected(reason detector.Reason) *FaceAnalysisResult {
	msg := msgNoFace
	if reason == detector.ReasonModelUnavailable {
		msg = msgModelUnavail
	}

	return &FaceAnalysisResult{
		ID:         uuid.New(),
		Detected:   false,
		Message:    msg,
		AnalyzedAt: time.Now().UTC(),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
