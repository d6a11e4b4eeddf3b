package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/matzehuels/graphderiv/pkg/buildinfo"
	gio "github.com/matzehuels/graphderiv/pkg/io"
	"github.com/matzehuels/graphderiv/pkg/pipeline"
	"github.com/matzehuels/graphderiv/pkg/temporal"
)

// =============================================================================
// Requests
// =============================================================================

type initRandomRequest struct {
	NumNodes     *int     `json:"num_nodes"`
	NumSnapshots *int     `json:"num_snapshots"`
	EdgeProb     *float64 `json:"edge_prob"`
	Seed         *int64   `json:"seed"`
}

type windowRequest struct {
	Graph *gio.Document `json:"graph" validate:"required"`
	T     int           `json:"t" validate:"gte=0"`
	Delta *int          `json:"delta" validate:"omitempty,min=1"`
}

type graphRequest struct {
	Graph *gio.Document `json:"graph" validate:"required"`
}

type initRandomResponse struct {
	Status string       `json:"status"`
	ID     string       `json:"id"`
	Graph  gio.Document `json:"graph"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleInitRandom(w http.ResponseWriter, r *http.Request) {
	var req initRandomRequest
	if err := decode(w, r, &req, true); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.GenerateOptions{
		Vertices:  valueOr(req.NumNodes, pipeline.DefaultVertices),
		Snapshots: valueOr(req.NumSnapshots, pipeline.DefaultSnapshots),
		EdgeProb:  valueOr(req.EdgeProb, pipeline.DefaultEdgeProb),
		Seed:      req.Seed,
		Limits:    &s.limits,
	}
	if opts.Seed == nil {
		opts.Seed = s.cfg.Generate.Seed
	}

	g, err := s.runner.Generate(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, initRandomResponse{
		Status: "ok",
		ID:     uuid.NewString(),
		Graph:  gio.FromGraph(g),
	})
}

func (s *Server) handleDifferential(w http.ResponseWriter, r *http.Request) {
	req, g, ok := s.decodeWindow(w, r)
	if !ok {
		return
	}
	res, err := s.runner.Differential(r.Context(), g, s.windowOptions(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cacheHeader(w, res.CacheHit)
	s.writeJSON(w, http.StatusOK, res.Elements)
}

func (s *Server) handleStaticExpansion(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if err := decode(w, r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := req.Graph.ToGraph()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.StaticExpansion(r.Context(), g)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cacheHeader(w, res.CacheHit)
	s.writeJSON(w, http.StatusOK, res.Elements)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, g, ok := s.decodeWindow(w, r)
	if !ok {
		return
	}
	res, err := s.runner.Analyze(r.Context(), g, s.windowOptions(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cacheHeader(w, res.CacheHit)
	s.writeJSON(w, http.StatusOK, res)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) decodeWindow(w http.ResponseWriter, r *http.Request) (windowRequest, *temporal.Graph, bool) {
	var req windowRequest
	if err := decode(w, r, &req, false); err != nil {
		s.writeError(w, r, err)
		return req, nil, false
	}
	g, err := req.Graph.ToGraph()
	if err != nil {
		s.writeError(w, r, err)
		return req, nil, false
	}
	return req, g, true
}

func (s *Server) windowOptions(req windowRequest) pipeline.Options {
	return pipeline.Options{
		T:      req.T,
		Delta:  valueOr(req.Delta, s.cfg.Analysis.DefaultDelta),
		Logger: s.logger,
	}
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
