// Package api exposes the extraction service over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/profilex/internal/config"
	"github.com/dgallion1/profilex/internal/pipeline"
	"github.com/dgallion1/profilex/internal/profile"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for profilex.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	stats        *profile.Stats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, stats *profile.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		stats:        stats,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		jsonError(w, "not found", http.StatusNotFound)
	})

	// Public endpoints.
	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	// API endpoints; Bearer auth only when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/extract", s.handleExtract)
		r.Post("/api/export/csv", s.handleExportCSV)

		r.Post("/api/extract/file", s.handleExtractFile)
		r.Post("/api/extract/batch", s.handleExtractBatch)
		r.Get("/api/extract/jobs/{jobID}", s.handleJobStatus)
		r.Get("/api/extract/jobs/{jobID}/result", s.handleJobResult)

		r.Get("/api/stats/extract", s.handleExtractStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
