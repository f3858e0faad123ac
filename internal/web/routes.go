package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/web/handlers"
)

func (s *Server) setupRoutes(deps Deps) {
	// Create handlers
	analyzeHandler := handlers.NewAnalyzeHandler(deps.Analyzer, deps.Tracker, deps.Log)
	stylesHandler := handlers.NewStylesHandler(deps.Catalog, deps.Tracker, deps.Scoring)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Analysis
		r.Post("/analyze", analyzeHandler.Analyze)
		r.Get("/analysis", analyzeHandler.Current)

		// Styles with recommendation scores
		r.Get("/styles", stylesHandler.List)
		r.Get("/styles/{id}", stylesHandler.Get)
	})
}
