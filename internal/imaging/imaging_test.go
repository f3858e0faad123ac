package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

// encodeTestJPEG creates a solid-color JPEG of the given dimensions.
func encodeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 180, G: 140, B: 110, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	data := encodeTestJPEG(t, 20, 10)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("unexpected bounds: %v", img.Bounds())
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for invalid image data")
	}
}

func TestResizeToFit(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		maxSize    int
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "landscape above limit",
			width:      200,
			height:     100,
			maxSize:    100,
			wantWidth:  100,
			wantHeight: 50,
		},
		{
			name:       "portrait above limit",
			width:      100,
			height:     200,
			maxSize:    100,
			wantWidth:  50,
			wantHeight: 100,
		},
		{
			name:       "within limit unchanged",
			width:      80,
			height:     60,
			maxSize:    100,
			wantWidth:  80,
			wantHeight: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodeTestJPEG(t, tt.width, tt.height)

			resized, err := ResizeToFit(data, tt.maxSize)
			if err != nil {
				t.Fatalf("ResizeToFit() returned error: %v", err)
			}

			img, err := Decode(resized)
			if err != nil {
				t.Fatalf("failed to decode resized image: %v", err)
			}
			if img.Bounds().Dx() != tt.wantWidth || img.Bounds().Dy() != tt.wantHeight {
				t.Errorf("got %dx%d, want %dx%d",
					img.Bounds().Dx(), img.Bounds().Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}
