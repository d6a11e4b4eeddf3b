// Package server exposes the graphderiv pipeline over HTTP.
//
// All endpoints are stateless: every request carries the full temporal
// graph document, so any instance can serve any request.
//
//	POST /api/init-random       generate a random temporal graph
//	POST /api/differential      expand one window into Cytoscape elements
//	POST /api/static-expansion  expand the whole timeline
//	POST /api/analyze           twins, window metrics and Δ-differential tree-width
//	GET  /health                liveness probe
//
// When a static directory is configured, every other GET is served from it.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matzehuels/graphderiv/internal/config"
	"github.com/matzehuels/graphderiv/pkg/generate"
	"github.com/matzehuels/graphderiv/pkg/pipeline"
)

// maxBodyBytes bounds request bodies. Graphs are capped at 30 vertices and
// 20 snapshots by the generator, but user-supplied documents may be larger.
const maxBodyBytes = 4 << 20

const shutdownTimeout = 10 * time.Second

// Server serves the HTTP API.
type Server struct {
	cfg    config.Config
	runner *pipeline.Runner
	logger *log.Logger
	limits generate.Limits
}

// New creates a server backed by runner.
func New(cfg config.Config, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:    cfg,
		runner: runner,
		logger: logger,
		limits: generate.Limits{
			MaxVertices:  cfg.Generate.MaxVertices,
			MaxSnapshots: cfg.Generate.MaxSnapshots,
		},
	}
}

// Handler builds the router with all middleware and routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(serverHeader)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Cache"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/init-random", s.handleInitRandom)
		r.Post("/differential", s.handleDifferential)
		r.Post("/static-expansion", s.handleStaticExpansion)
		r.Post("/analyze", s.handleAnalyze)
	})

	if dir := s.cfg.Server.StaticDir; dir != "" {
		r.Handle("/*", http.FileServer(http.Dir(dir)))
	}
	return r
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
