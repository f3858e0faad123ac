package analyzer

import (
	"fmt"
	"image"
	"math"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/constants"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/detector"
)

// skinSampleIndices are the five landmark indices averaged into the skin tone.
var skinSampleIndices = []int{
	constants.SampleForeheadCenter,
	constants.LandmarkLeftCheek,
	constants.LandmarkRightCheek,
	constants.SampleNoseBridge,
	constants.SampleNoseTip,
}

// DefaultSkinTone is the documented neutral fallback used when no sample
// point lands inside the image bounds.
func DefaultSkinTone() SkinTone {
	return NewSkinTone(constants.DefaultSkinR, constants.DefaultSkinG, constants.DefaultSkinB)
}

// NewSkinTone builds a SkinTone with its hex encoding derived from the channels.
func NewSkinTone(r, g, b int) SkinTone {
	return SkinTone{R: r, G: g, B: b, Hex: EncodeHex(r, g, b)}
}

// EncodeHex encodes RGB channels as a lowercase #rrggbb string.
func EncodeHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// DecodeHex parses a #rrggbb string back into RGB channels.
// It is the exact inverse of EncodeHex.
func DecodeHex(hex string) (r, g, b int, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return r, g, b, nil
}

// SampleSkinTone reads skin color at five fixed landmark positions and
// returns the integer-rounded average of the in-bounds samples.
// Out-of-bounds samples are skipped; if every sample falls outside the image
// the neutral default is returned instead of an error.
func SampleSkinTone(img image.Image, landmarks []detector.Landmark) SkinTone {
	if len(landmarks) != detector.LandmarkCount {
		return DefaultSkinTone()
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var sumR, sumG, sumB float64
	valid := 0

	for _, idx := range skinSampleIndices {
		p := landmarks[idx]
		x := bounds.Min.X + int(p.X*float64(width))
		y := bounds.Min.Y + int(p.Y*float64(height))

		if !image.Pt(x, y).In(bounds) {
			continue
		}

		r, g, b, _ := img.At(x, y).RGBA()
		sumR += float64(r >> 8)
		sumG += float64(g >> 8)
		sumB += float64(b >> 8)
		valid++
	}

	if valid == 0 {
		return DefaultSkinTone()
	}

	return NewSkinTone(
		int(math.Round(sumR/float64(valid))),
		int(math.Round(sumG/float64(valid))),
		int(math.Round(sumB/float64(valid))),
	)
}
