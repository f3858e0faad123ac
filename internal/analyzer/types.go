// Package analyzer implements the facial feature classification pipeline:
// geometric face-shape classification, skin-tone sampling, and personal-color
// classification over landmarks produced by an external detector.
package analyzer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/detector"
)

// FaceShape is a face-outline category used to recommend haircuts.
// The set is closed; a failed classification is represented by
// FaceAnalysisResult.Detected=false, never by an extra member.
type FaceShape string

const (
	ShapeOval    FaceShape = "oval"
	ShapeRound   FaceShape = "round"
	ShapeSquare  FaceShape = "square"
	ShapeHeart   FaceShape = "heart"
	ShapeLong    FaceShape = "long"
	ShapeDiamond FaceShape = "diamond"
	ShapeOblong  FaceShape = "oblong"
)

// FaceShapes lists every valid face shape.
var FaceShapes = []FaceShape{
	ShapeOval, ShapeRound, ShapeSquare, ShapeHeart, ShapeLong, ShapeDiamond, ShapeOblong,
}

// ParseFaceShape validates a raw string against the closed enumeration.
func ParseFaceShape(s string) (FaceShape, error) {
	for _, shape := range FaceShapes {
		if s == string(shape) {
			return shape, nil
		}
	}
	return "", fmt.Errorf("unknown face shape %q", s)
}

// PersonalColor is a seasonal skin-tone category on two axes:
// warm/cool family and bright/muted variant.
type PersonalColor string

const (
	SpringWarmBright PersonalColor = "spring_warm_bright"
	SpringWarmMuted  PersonalColor = "spring_warm_muted"
	AutumnWarmBright PersonalColor = "autumn_warm_bright"
	AutumnWarmMuted  PersonalColor = "autumn_warm_muted"
	SummerCoolBright PersonalColor = "summer_cool_bright"
	SummerCoolMuted  PersonalColor = "summer_cool_muted"
	WinterCoolBright PersonalColor = "winter_cool_bright"
	WinterCoolMuted  PersonalColor = "winter_cool_muted"
)

// PersonalColors lists every valid personal-color season.
var PersonalColors = []PersonalColor{
	SpringWarmBright, SpringWarmMuted, AutumnWarmBright, AutumnWarmMuted,
	SummerCoolBright, SummerCoolMuted, WinterCoolBright, WinterCoolMuted,
}

// ParsePersonalColor validates a raw string against the closed enumeration.
func ParsePersonalColor(s string) (PersonalColor, error) {
	for _, color := range PersonalColors {
		if s == string(color) {
			return color, nil
		}
	}
	return "", fmt.Errorf("unknown personal color %q", s)
}

// SkinTone is an averaged skin color sample. Hex is always the deterministic
// lowercase encoding of (R, G, B).
type SkinTone struct {
	R   int    `json:"r"`
	G   int    `json:"g"`
	B   int    `json:"b"`
	Hex string `json:"hex"`
}

// FaceAnalysisResult is the immutable outcome of running the full pipeline on
// one uploaded portrait. A replacement upload supersedes the result; it is
// never mutated in place.
//
// Invariant: Detected=false implies FaceShape, PersonalColor and SkinTone are
// all empty.
type FaceAnalysisResult struct {
	ID            uuid.UUID           `json:"id"`
	Detected      bool                `json:"detected"`
	FaceShape     FaceShape           `json:"faceShape,omitempty"`
	PersonalColor PersonalColor       `json:"personalColor,omitempty"`
	Confidence    float64             `json:"confidence"`
	SkinTone      *SkinTone           `json:"skinTone,omitempty"`
	Landmarks     []detector.Landmark `json:"landmarks,omitempty"`
	Message       string              `json:"message"`
	AnalyzedAt    time.Time           `json:"analyzedAt"`
}
