// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Face-mesh landmark indices used by the geometry classifier.
// Index positions follow the external detector's 468-point topology.
const (
	// LandmarkForeheadTop is the topmost forehead point
	LandmarkForeheadTop = 10

	// LandmarkChinBottom is the lowest chin point
	LandmarkChinBottom = 152

	// LandmarkLeftCheek is the outer left cheek point
	LandmarkLeftCheek = 234

	// LandmarkRightCheek is the outer right cheek point
	LandmarkRightCheek = 454

	// LandmarkLeftJaw is the left jaw corner
	LandmarkLeftJaw = 172

	// LandmarkRightJaw is the right jaw corner
	LandmarkRightJaw = 397
)

// Face-mesh landmark indices sampled for skin tone.
const (
	// SampleForeheadCenter is the central forehead sample point
	SampleForeheadCenter = 9

	// SampleNoseBridge is the nose bridge sample point
	SampleNoseBridge = 6

	// SampleNoseTip is the nose tip sample point
	SampleNoseTip = 4

	// The cheek samples reuse LandmarkLeftCheek and LandmarkRightCheek.
)

// Skin-tone sampler defaults
const (
	// DefaultSkinR is the red channel of the neutral fallback skin tone
	// used when no sample point lands inside the image
	DefaultSkinR = 200

	// DefaultSkinG is the green channel of the neutral fallback skin tone
	DefaultSkinG = 150

	// DefaultSkinB is the blue channel of the neutral fallback skin tone
	DefaultSkinB = 120
)

// Upload and image processing constants
const (
	// MaxUploadSize is the maximum accepted portrait upload size in bytes (10 MB)
	MaxUploadSize = 10 << 20

	// MaxImageSize is the maximum dimension (width or height) sent to the detector
	MaxImageSize = 1920
)
