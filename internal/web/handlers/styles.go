package handlers

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/analyzer"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/catalog"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/scoring"
)

// StylesHandler serves the catalog with per-style recommendation scores.
type StylesHandler struct {
	catalog *catalog.Catalog
	tracker *analyzer.Tracker
	scoring scoring.Config
}

// NewStylesHandler creates a new styles handler.
func NewStylesHandler(c *catalog.Catalog, tracker *analyzer.Tracker, cfg scoring.Config) *StylesHandler {
	return &StylesHandler{
		catalog: c,
		tracker: tracker,
		scoring: cfg,
	}
}

// scoredStyle is a catalog style with its recommendation for the current analysis.
type scoredStyle struct {
	catalog.Style
	Recommendation scoring.Recommendation `json:"recommendation"`
}

// List returns catalog styles scored against the current analysis, sorted by
// score descending (catalog order within equal scores). Without an analysis
// every score is zero. Query parameters: category (cut|color), search
// (diacritics-insensitive name match), recommended=true (filter to styles
// meeting the good threshold).
func (h *StylesHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && category != string(catalog.CategoryCut) && category != string(catalog.CategoryColor) {
		respondError(w, http.StatusBadRequest, "unknown category")
		return
	}

	recommendedOnly := r.URL.Query().Get("recommended") == "true"
	current := h.tracker.Current()

	styles := h.catalog.Search(r.URL.Query().Get("search"))
	scored := make([]scoredStyle, 0, len(styles))
	for i := range styles {
		style := styles[i]
		if category != "" && style.Category != catalog.Category(category) {
			continue
		}

		rec := scoring.Score(current, &style, h.scoring)
		if recommendedOnly && !rec.MeetsGoodThreshold {
			continue
		}
		scored = append(scored, scoredStyle{Style: style, Recommendation: rec})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Recommendation.Score > scored[j].Recommendation.Score
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"styles":   scored,
		"analyzed": current != nil,
	})
}

// Get returns one style with its recommendation for the current analysis.
func (h *StylesHandler) Get(w http.ResponseWriter, r *http.Request) {
	style, ok := h.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "style not found")
		return
	}

	rec := scoring.Score(h.tracker.Current(), style, h.scoring)
	respondJSON(w, http.StatusOK, scoredStyle{Style: *style, Recommendation: rec})
}
