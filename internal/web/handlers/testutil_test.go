package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/analyzer"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/catalog"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/constants"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/detector"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/scoring"
)

// testLandmarks builds a full landmark set whose geometry points yield the
// given height/width and jaw/width ratios.
func testLandmarks(hwRatio, jwRatio float64) []detector.Landmark {
	landmarks := detector.UniformLandmarks(0.5, 0.5, 0)

	const faceWidth = 0.4
	landmarks[constants.LandmarkLeftCheek] = detector.Landmark{X: 0.3, Y: 0.5}
	landmarks[constants.LandmarkRightCheek] = detector.Landmark{X: 0.3 + faceWidth, Y: 0.5}
	landmarks[constants.LandmarkForeheadTop] = detector.Landmark{X: 0.5, Y: 0.1}
	landmarks[constants.LandmarkChinBottom] = detector.Landmark{X: 0.5, Y: 0.1 + hwRatio*faceWidth}

	jawWidth := jwRatio * faceWidth
	landmarks[constants.LandmarkLeftJaw] = detector.Landmark{X: 0.5 - jawWidth/2, Y: 0.7}
	landmarks[constants.LandmarkRightJaw] = detector.Landmark{X: 0.5 + jawWidth/2, Y: 0.7}

	return landmarks
}

// testAnalyzer builds an analyzer over a fake detector plus a fresh tracker.
func testAnalyzer(fake *detector.Fake) (*analyzer.Analyzer, *analyzer.Tracker) {
	return analyzer.New(fake, zerolog.Nop()), analyzer.NewTracker()
}

// testCatalog parses a small fixed catalog for handler tests.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Parse([]byte(`
styles:
  - id: bob-cut
    name: Bob Cut
    category: cut
    face_shapes:
      oval: excellent
      round: good
  - id: pixie-cut
    name: Pixie Cut
    category: cut
    face_shapes:
      heart: good
  - id: ash-grey
    name: Ash Grey
    category: color
    personal_colors:
      spring_warm_bright: excellent
`))
	if err != nil {
		t.Fatalf("failed to parse test catalog: %v", err)
	}
	return c
}

// portraitJPEG encodes a small solid-color portrait.
func portraitJPEG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 100, 120))
	for x := 0; x < 100; x++ {
		for y := 0; y < 120; y++ {
			img.Set(x, y, color.RGBA{R: 220, G: 180, B: 150, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode test portrait: %v", err)
	}
	return buf.Bytes()
}

// multipartPhotoRequest builds a multipart POST request with a photo field.
func multipartPhotoRequest(t *testing.T, path string, photo []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("photo", "portrait.jpg")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(photo); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// requestWithChiParams creates a request with chi URL parameters
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// defaultScoring returns the reference scoring configuration for tests.
func defaultScoring() scoring.Config {
	return scoring.DefaultConfig()
}
