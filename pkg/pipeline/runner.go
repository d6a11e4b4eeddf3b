package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphderiv/pkg/analysis"
	"github.com/matzehuels/graphderiv/pkg/cache"
	"github.com/matzehuels/graphderiv/pkg/expansion"
	"github.com/matzehuels/graphderiv/pkg/generate"
	gio "github.com/matzehuels/graphderiv/pkg/io"
	"github.com/matzehuels/graphderiv/pkg/observability"
	"github.com/matzehuels/graphderiv/pkg/temporal"
	"github.com/matzehuels/graphderiv/pkg/treewidth"
)

// Cache key types reported to observability hooks.
const (
	keyTypeDifferential = "differential"
	keyTypeExpansion    = "expansion"
	keyTypeAnalysis     = "analysis"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// GraphHash returns the content hash of g's JSON document.
func GraphHash(g *temporal.Graph) (string, error) {
	data, err := gio.MarshalGraph(g)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

// =============================================================================
// Generate
// =============================================================================

// Generate samples a random temporal graph.
func (r *Runner) Generate(ctx context.Context, opts GenerateOptions) (*temporal.Graph, error) {
	opts.SetDefaults()

	var genOpts []generate.Option
	if opts.Seed != nil {
		genOpts = append(genOpts, generate.WithSeed(*opts.Seed))
	}

	start := time.Now()
	g, err := generate.Random(opts.Vertices, opts.Snapshots, opts.EdgeProb, genOpts...)
	observability.Analysis().OnGenerateComplete(ctx, opts.Vertices, opts.Snapshots, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("generated graph",
		"vertices", g.VertexCount(),
		"snapshots", g.Lifetime(),
		"edges", len(g.UnionEdges()))
	return g, nil
}

// =============================================================================
// Expansion
// =============================================================================

// Differential expands window (opts.T, opts.Delta) of g. Invalid windows
// fail with an error matching [temporal.ErrInvalidWindow].
func (r *Runner) Differential(ctx context.Context, g *temporal.Graph, opts Options) (*ExpansionResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hash, err := GraphHash(g)
	if err != nil {
		return nil, fmt.Errorf("hash graph: %w", err)
	}
	key := r.Keyer.DifferentialKey(hash, opts.KeyOpts())
	return r.expand(ctx, key, keyTypeDifferential, opts.Refresh, opts.T, opts.Delta, func() (*expansion.Expansion, error) {
		return expansion.Build(g, opts.T, opts.Delta)
	})
}

// StaticExpansion expands the whole timeline of g.
func (r *Runner) StaticExpansion(ctx context.Context, g *temporal.Graph) (*ExpansionResult, error) {
	hash, err := GraphHash(g)
	if err != nil {
		return nil, fmt.Errorf("hash graph: %w", err)
	}
	key := r.Keyer.ExpansionKey(hash)
	return r.expand(ctx, key, keyTypeExpansion, false, 0, g.Lifetime(), func() (*expansion.Expansion, error) {
		return expansion.Static(g)
	})
}

func (r *Runner) expand(ctx context.Context, key, keyType string, refresh bool, t, delta int, build func() (*expansion.Expansion, error)) (*ExpansionResult, error) {
	if !refresh {
		var cached ExpansionResult
		if r.load(ctx, key, keyType, &cached) {
			cached.CacheHit = true
			return &cached, nil
		}
	}

	hooks := observability.Analysis()
	hooks.OnDifferentialStart(ctx, t, delta)
	start := time.Now()

	exp, err := build()
	if err != nil {
		hooks.OnDifferentialComplete(ctx, t, delta, 0, time.Since(start), err)
		return nil, err
	}
	res, err := summarize(exp)
	hooks.OnDifferentialComplete(ctx, t, delta, len(exp.Nodes), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("expanded window",
		"t", t,
		"delta", delta,
		"nodes", res.Elements.Stats.NumNodes,
		"tw", res.TreeWidth,
		"duration", time.Since(start))

	r.store(ctx, key, keyType, res)
	return res, nil
}

func summarize(exp *expansion.Expansion) (*ExpansionResult, error) {
	sg, err := exp.Graph()
	if err != nil {
		return nil, fmt.Errorf("expansion graph: %w", err)
	}
	return &ExpansionResult{
		Window:    Window{T: exp.Window.T, Delta: exp.Window.Delta},
		Elements:  gio.Elements(exp),
		MaxDegree: exp.MaxDegree(),
		TreeWidth: treewidth.Width(sg),
	}, nil
}

// =============================================================================
// Analysis
// =============================================================================

// Analyze produces the full report for window (opts.T, opts.Delta). It
// only fails on invalid options; windows that do not fit g are reported
// inside the result.
func (r *Runner) Analyze(ctx context.Context, g *temporal.Graph, opts Options) (*AnalysisResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hash, err := GraphHash(g)
	if err != nil {
		return nil, fmt.Errorf("hash graph: %w", err)
	}
	key := r.Keyer.AnalysisKey(hash, opts.KeyOpts())

	if !opts.Refresh {
		var cached AnalysisResult
		if r.load(ctx, key, keyTypeAnalysis, &cached) {
			cached.CacheHit = true
			return &cached, nil
		}
	}

	hooks := observability.Analysis()
	hooks.OnAnalyzeStart(ctx, g.VertexCount(), g.Lifetime())
	start := time.Now()

	res := NewAnalysisResult(analysis.Analyze(g, opts.T, opts.Delta))
	hooks.OnAnalyzeComplete(ctx, time.Since(start), nil)

	r.Logger.Info("analyzed graph",
		"vertices", res.NumVertices,
		"lifetime", res.Lifetime,
		"twins", res.NumEternalTwins,
		"duration", time.Since(start))

	r.store(ctx, key, keyTypeAnalysis, res)
	return res, nil
}

// =============================================================================
// Cache helpers
// =============================================================================

func (r *Runner) load(ctx context.Context, key, keyType string, v any) bool {
	hit, err := cache.GetJSON(ctx, r.Cache, key, v)
	switch {
	case err != nil:
		r.Logger.Warn("cache read failed", "kind", keyType, "err", err)
		observability.Cache().OnCacheError(ctx, keyType, err)
		return false
	case hit:
		observability.Cache().OnCacheHit(ctx, keyType)
		return true
	default:
		observability.Cache().OnCacheMiss(ctx, keyType)
		return false
	}
}

func (r *Runner) store(ctx context.Context, key, keyType string, v any) {
	data, err := json.Marshal(v)
	if err == nil {
		err = r.Cache.Set(ctx, key, data, r.TTL)
	}
	if err != nil {
		r.Logger.Warn("cache write failed", "kind", keyType, "err", err)
		observability.Cache().OnCacheError(ctx, keyType, err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
