package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/analyzer"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/constants"
)

// AnalyzeHandler handles portrait analysis endpoints.
type AnalyzeHandler struct {
	analyzer *analyzer.Analyzer
	tracker  *analyzer.Tracker
	log      zerolog.Logger
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(a *analyzer.Analyzer, tracker *analyzer.Tracker, log zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: a,
		tracker:  tracker,
		log:      log.With().Str("component", "analyze-handler").Logger(),
	}
}

// Analyze handles a multipart portrait upload and runs the full pipeline.
// A photo with no detectable face is a successful request with detected=false;
// only broken input or detector transport failures are errors. Each upload
// supersedes the previous analysis; a slow analysis for a photo that was
// replaced mid-flight is discarded.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	if err := r.ParseMultipartForm(constants.MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, "photo exceeds the upload size limit")
			return
		}
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respondError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read photo")
		return
	}

	generation := h.tracker.Begin()
	result, err := h.analyzer.Analyze(r.Context(), imageData)
	if err != nil {
		h.log.Error().Err(err).Str("file", header.Filename).Msg("analysis failed")
		respondError(w, http.StatusBadRequest, "could not analyze photo: "+err.Error())
		return
	}

	if !h.tracker.Apply(generation, result) {
		h.log.Debug().Str("file", header.Filename).Msg("discarding stale analysis")
	}

	respondJSON(w, http.StatusOK, result)
}

// Current returns the most recent analysis result.
func (h *AnalyzeHandler) Current(w http.ResponseWriter, r *http.Request) {
	result := h.tracker.Current()
	if result == nil {
		respondError(w, http.StatusNotFound, "no analysis available")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
