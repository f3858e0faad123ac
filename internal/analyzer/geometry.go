package analyzer

import (
	"errors"
	"math"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/constants"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/detector"
)

// ErrInsufficientLandmarks is returned when a landmark set with the wrong
// topology reaches the classifier. The classifier fails closed: it never
// guesses a shape from partial data.
var ErrInsufficientLandmarks = errors.New("landmark set does not match the 468-point topology")

// GeometryThresholds holds every boundary constant of the face-shape decision
// tree. Keeping them in one place makes the thresholds auditable and testable
// independently of the branching structure.
type GeometryThresholds struct {
	// TallFace is the height/width ratio above which a face is tall (oval/long).
	TallFace float64
	// WideFace is the height/width ratio below which a face is wide (round/square).
	WideFace float64
	// TallNarrowJaw splits tall faces: below it oval, otherwise long.
	TallNarrowJaw float64
	// WideBroadJaw splits wide faces: above it round, otherwise square.
	WideBroadJaw float64
	// MidNarrowJaw marks heart shapes within the middle ratio band.
	MidNarrowJaw float64
	// MidBroadJaw marks diamond shapes within the middle ratio band.
	MidBroadJaw float64
}

// DefaultGeometryThresholds returns the reference thresholds.
func DefaultGeometryThresholds() GeometryThresholds {
	return GeometryThresholds{
		TallFace:      1.35,
		WideFace:      1.1,
		TallNarrowJaw: 0.7,
		WideBroadJaw:  0.85,
		MidNarrowJaw:  0.68,
		MidBroadJaw:   0.88,
	}
}

// faceRatios are the two measurements the classifier branches on.
type faceRatios struct {
	heightWidth float64
	jawWidth    float64
}

// computeRatios derives the height/width and jaw/face width ratios from the
// six fixed geometry landmarks.
func computeRatios(landmarks []detector.Landmark) faceRatios {
	faceWidth := math.Abs(landmarks[constants.LandmarkRightCheek].X - landmarks[constants.LandmarkLeftCheek].X)
	faceHeight := math.Abs(landmarks[constants.LandmarkChinBottom].Y - landmarks[constants.LandmarkForeheadTop].Y)
	jawWidth := math.Abs(landmarks[constants.LandmarkRightJaw].X - landmarks[constants.LandmarkLeftJaw].X)

	return faceRatios{
		heightWidth: faceHeight / faceWidth,
		jawWidth:    jawWidth / faceWidth,
	}
}

// ClassifyFaceShape maps a full landmark set to exactly one face shape.
// First matching rule wins; all comparisons are strict, so boundary values
// fall through to the branch reached by the next comparison. Landmark sets
// with the wrong topology return ErrInsufficientLandmarks.
func ClassifyFaceShape(landmarks []detector.Landmark, t GeometryThresholds) (FaceShape, error) {
	if len(landmarks) != detector.LandmarkCount {
		return "", ErrInsufficientLandmarks
	}

	r := computeRatios(landmarks)
	return classifyRatios(r, t), nil
}

// classifyRatios runs the decision tree over precomputed ratios.
// Split out so tests can pin exact ratio boundaries.
func classifyRatios(r faceRatios, t GeometryThresholds) FaceShape {
	switch {
	case r.heightWidth > t.TallFace:
		if r.jawWidth < t.TallNarrowJaw {
			return ShapeOval
		}
		return ShapeLong
	case r.heightWidth < t.WideFace:
		if r.jawWidth > t.WideBroadJaw {
			return ShapeRound
		}
		return ShapeSquare
	default:
		if r.jawWidth < t.MidNarrowJaw {
			return ShapeHeart
		}
		if r.jawWidth > t.MidBroadJaw {
			return ShapeDiamond
		}
		return ShapeOblong
	}
}
