// Package pipeline runs graphderiv computations with caching.
//
// The CLI and the HTTP API both go through a [Runner], so defaults,
// validation, cache keys and hooks behave identically for every entry
// point.
//
// # Stages
//
//   - Generate: sample a random temporal graph
//   - Differential: expand one window (t, Δ) into Cytoscape elements
//   - StaticExpansion: expand the whole timeline
//   - Analyze: eternal twins, window metrics and the Δ-differential
//     tree-width in one report
//   - Render: turn an expansion into DOT, SVG, PNG, PDF or JSON
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Differential(ctx, g, pipeline.Options{T: 0, Delta: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Elements.Stats.NumNodes)
//
// Results are cached as JSON keyed by the content hash of the graph
// document. Cache failures never fail a stage; they are logged and
// reported through [observability.Cache].
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphderiv/pkg/analysis"
	"github.com/matzehuels/graphderiv/pkg/cache"
	"github.com/matzehuels/graphderiv/pkg/generate"
	gio "github.com/matzehuels/graphderiv/pkg/io"
	"github.com/matzehuels/graphderiv/pkg/temporal"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultT is the default window start.
	DefaultT = 0

	// DefaultDelta is the default window length.
	DefaultDelta = 2

	// DefaultVertices is the default vertex count of generated graphs.
	DefaultVertices = 10

	// DefaultSnapshots is the default lifetime of generated graphs.
	DefaultSnapshots = 5

	// DefaultEdgeProb is the default per-pair edge probability.
	DefaultEdgeProb = 0.2

	// DefaultTTL is how long computed results stay cached.
	DefaultTTL = 24 * time.Hour
)

// Format constants for rendered expansions.
const (
	FormatJSON = "json" // Cytoscape elements
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported render formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, dot, svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options - Window Configuration
// =============================================================================

// Options selects the window (T, Delta) for Differential and Analyze.
// A zero Delta selects [DefaultDelta]; callers taking Δ from users must
// reject 0 themselves.
type Options struct {
	T     int `json:"t"`
	Delta int `json:"delta,omitempty"`

	// Refresh skips the cache lookup; the fresh result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults applies defaults and rejects negative values.
// Whether the window fits the graph is checked by the analysis itself.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Delta == 0 {
		o.Delta = DefaultDelta
	}
	if o.T < 0 {
		return fmt.Errorf("t must be >= 0, got %d", o.T)
	}
	if o.Delta < 0 {
		return fmt.Errorf("delta must be >= 1, got %d", o.Delta)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// KeyOpts returns the cache key options for the window.
func (o *Options) KeyOpts() cache.WindowKeyOpts {
	return cache.WindowKeyOpts{T: o.T, Delta: o.Delta}
}

// GenerateOptions configures random graph generation.
type GenerateOptions struct {
	Vertices  int     `json:"num_nodes"`
	Snapshots int     `json:"num_snapshots"`
	EdgeProb  float64 `json:"edge_prob"`

	// Seed makes generation reproducible. Nil draws a time-based seed.
	Seed *int64 `json:"seed,omitempty"`

	// Limits, when non-nil, clamps the parameters instead of rejecting them.
	Limits *generate.Limits `json:"-"`

	// validated tracks whether SetDefaults has been called.
	validated bool
}

// SetDefaults fills unset parameters. An explicit zero EdgeProb cannot be
// distinguished from unset and is kept; vertex and snapshot counts of 0
// become the defaults.
func (o *GenerateOptions) SetDefaults() {
	if o.validated {
		return
	}
	if o.Vertices == 0 {
		o.Vertices = DefaultVertices
	}
	if o.Snapshots == 0 {
		o.Snapshots = DefaultSnapshots
	}
	if o.Limits != nil {
		o.Vertices, o.Snapshots, o.EdgeProb = generate.Clamp(o.Vertices, o.Snapshots, o.EdgeProb, *o.Limits)
	}
	o.validated = true
}

// =============================================================================
// Results
// =============================================================================

// Window identifies the expanded range of snapshots.
type Window struct {
	T     int `json:"t"`
	Delta int `json:"delta"`
}

// ExpansionResult is the output of Differential and StaticExpansion.
type ExpansionResult struct {
	Window    Window         `json:"window"`
	Elements  gio.CyElements `json:"elements"`
	MaxDegree int            `json:"max_degree"`
	TreeWidth int            `json:"tree_width"`
	CacheHit  bool           `json:"-"`
}

// TwinPair is one eternal-twin pair in API form.
type TwinPair struct {
	U temporal.Vertex `json:"u"`
	V temporal.Vertex `json:"v"`
}

// AnalysisResult is the JSON shape of an [analysis.Report]. Window
// metrics are null when the window does not fit the graph; the DTW
// fields are null/empty when Δ is out of range.
type AnalysisResult struct {
	EternalTwins          []TwinPair `json:"eternal_twins"`
	NumEternalTwins       int        `json:"num_eternal_twins"`
	MaxDegreeDifferential *int       `json:"max_degree_differential"`
	TWCurrentDifferential *int       `json:"tw_current_differential"`
	DTWDelta              *int       `json:"dtw_delta"`
	DTWPerT               [][2]int   `json:"dtw_per_t"`
	Lifetime              int        `json:"lifetime"`
	NumVertices           int        `json:"num_vertices"`
	EdgeCountsPerSnapshot []int      `json:"edge_counts_per_snapshot"`
	UnionGraphEdgeCount   int        `json:"union_graph_edge_count"`
	WindowError           string     `json:"window_error,omitempty"`
	DeltaError            string     `json:"delta_error,omitempty"`

	CacheHit bool `json:"-"`
}

// NewAnalysisResult converts a report to its JSON shape.
func NewAnalysisResult(r analysis.Report) *AnalysisResult {
	out := &AnalysisResult{
		EternalTwins:          make([]TwinPair, len(r.Twins)),
		NumEternalTwins:       len(r.Twins),
		MaxDegreeDifferential: r.MaxDegree,
		TWCurrentDifferential: r.TreeWidth,
		DTWPerT:               [][2]int{},
		Lifetime:              r.Lifetime,
		NumVertices:           r.VertexCount,
		EdgeCountsPerSnapshot: r.SnapshotEdgeCounts,
		UnionGraphEdgeCount:   r.UnionEdgeCount,
	}
	for i, p := range r.Twins {
		out.EternalTwins[i] = TwinPair{U: p.U, V: p.V}
	}
	if r.DTW != nil {
		dtw := r.DTW.Max
		out.DTWDelta = &dtw
		for _, w := range r.DTW.PerT {
			out.DTWPerT = append(out.DTWPerT, [2]int{w.T, w.Width})
		}
	}
	if out.EdgeCountsPerSnapshot == nil {
		out.EdgeCountsPerSnapshot = []int{}
	}
	if r.WindowErr != nil {
		out.WindowError = r.WindowErr.Error()
	}
	if r.DeltaErr != nil {
		out.DeltaError = r.DeltaErr.Error()
	}
	return out
}
