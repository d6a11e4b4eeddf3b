package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphderiv/pkg/cache"
	"github.com/matzehuels/graphderiv/pkg/expansion"
	"github.com/matzehuels/graphderiv/pkg/generate"
	"github.com/matzehuels/graphderiv/pkg/observability"
	"github.com/matzehuels/graphderiv/pkg/temporal"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
	assert.NoError(t, ValidateFormats(nil))
	assert.Error(t, ValidateFormats([]string{"svg", "gif"}))
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	require.NoError(t, o.ValidateAndSetDefaults())
	assert.Equal(t, DefaultDelta, o.Delta)
	assert.NotNil(t, o.Logger)

	// Idempotent.
	o.Delta = 5
	require.NoError(t, o.ValidateAndSetDefaults())
	assert.Equal(t, 5, o.Delta)

	bad := Options{T: -1}
	assert.Error(t, bad.ValidateAndSetDefaults())
	bad = Options{Delta: -2}
	assert.Error(t, bad.ValidateAndSetDefaults())
}

func TestGenerateOptionsDefaults(t *testing.T) {
	var o GenerateOptions
	o.SetDefaults()
	assert.Equal(t, DefaultVertices, o.Vertices)
	assert.Equal(t, DefaultSnapshots, o.Snapshots)

	clamped := GenerateOptions{Vertices: 100, Snapshots: 100, EdgeProb: 3, Limits: &generate.DefaultLimits}
	clamped.SetDefaults()
	assert.Equal(t, 30, clamped.Vertices)
	assert.Equal(t, 20, clamped.Snapshots)
	assert.Equal(t, 1.0, clamped.EdgeProb)
}

func pathGraph(t *testing.T) *temporal.Graph {
	t.Helper()
	g, err := temporal.New([]temporal.Vertex{0, 1, 2}, [][]temporal.Edge{{{U: 0, V: 1}}, {{U: 1, V: 2}}})
	require.NoError(t, err)
	return g
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	return NewRunner(c, nil, log.New(&bytes.Buffer{}))
}

func TestRunnerDifferential(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	g := pathGraph(t)

	res, err := r.Differential(ctx, g, Options{T: 0, Delta: 2})
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, Window{T: 0, Delta: 2}, res.Window)
	assert.Equal(t, 6, res.Elements.Stats.NumNodes)
	assert.Equal(t, 2, res.Elements.Stats.NumBlackEdges)
	assert.Equal(t, 3, res.Elements.Stats.NumRedEdges)
	assert.Equal(t, 2, res.MaxDegree)
	assert.Equal(t, 1, res.TreeWidth)

	again, err := r.Differential(ctx, g, Options{T: 0, Delta: 2})
	require.NoError(t, err)
	assert.True(t, again.CacheHit)
	assert.Equal(t, res.Elements, again.Elements)

	fresh, err := r.Differential(ctx, g, Options{T: 0, Delta: 2, Refresh: true})
	require.NoError(t, err)
	assert.False(t, fresh.CacheHit)
}

func TestRunnerDifferentialInvalidWindow(t *testing.T) {
	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	_, err := r.Differential(context.Background(), pathGraph(t), Options{T: 1, Delta: 5})
	assert.ErrorIs(t, err, temporal.ErrInvalidWindow)
}

func TestRunnerStaticExpansion(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.StaticExpansion(context.Background(), pathGraph(t))
	require.NoError(t, err)
	assert.Equal(t, Window{T: 0, Delta: 2}, res.Window)
	assert.Equal(t, 6, res.Elements.Stats.NumNodes)
}

func TestRunnerStaticExpansionEmptyTimeline(t *testing.T) {
	g, err := temporal.New([]temporal.Vertex{0}, nil)
	require.NoError(t, err)

	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	_, err = r.StaticExpansion(context.Background(), g)
	assert.ErrorIs(t, err, temporal.ErrInvalidWindow)
}

func TestRunnerAnalyze(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	res, err := r.Analyze(ctx, pathGraph(t), Options{})
	require.NoError(t, err)
	require.NotNil(t, res.MaxDegreeDifferential)
	require.NotNil(t, res.TWCurrentDifferential)
	require.NotNil(t, res.DTWDelta)
	assert.Equal(t, 2, *res.MaxDegreeDifferential)
	assert.Equal(t, 1, *res.TWCurrentDifferential)
	assert.Equal(t, 1, *res.DTWDelta)
	assert.Equal(t, [][2]int{{0, 1}}, res.DTWPerT)
	assert.Equal(t, []int{1, 1}, res.EdgeCountsPerSnapshot)
	assert.Equal(t, 2, res.UnionGraphEdgeCount)
	assert.Empty(t, res.EternalTwins)

	cached, err := r.Analyze(ctx, pathGraph(t), Options{})
	require.NoError(t, err)
	assert.True(t, cached.CacheHit)
	assert.Equal(t, *res.DTWDelta, *cached.DTWDelta)
}

func TestAnalysisResultJSON(t *testing.T) {
	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	res, err := r.Analyze(context.Background(), pathGraph(t), Options{T: 1, Delta: 3})
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Nil(t, raw["max_degree_differential"])
	assert.Nil(t, raw["tw_current_differential"])
	assert.Nil(t, raw["dtw_delta"])
	assert.Equal(t, []any{}, raw["dtw_per_t"])
	assert.Equal(t, []any{}, raw["eternal_twins"])
	assert.EqualValues(t, 2, raw["lifetime"])
	assert.Contains(t, raw["window_error"], "invalid window")
	assert.Contains(t, raw["delta_error"], "delta=3")
}

func TestRunnerGenerate(t *testing.T) {
	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	seed := int64(11)

	a, err := r.Generate(context.Background(), GenerateOptions{Vertices: 6, Snapshots: 3, EdgeProb: 0.4, Seed: &seed})
	require.NoError(t, err)
	b, err := r.Generate(context.Background(), GenerateOptions{Vertices: 6, Snapshots: 3, EdgeProb: 0.4, Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, a.Snapshots(), b.Snapshots())
	assert.Equal(t, 6, a.VertexCount())

	_, err = r.Generate(context.Background(), GenerateOptions{Vertices: -1})
	assert.ErrorIs(t, err, generate.ErrNegativeVertices)
}

type countingCacheHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestRunnerCacheHooks(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	r := newTestRunner(t)
	ctx := context.Background()
	g := pathGraph(t)

	_, err := r.Differential(ctx, g, Options{Delta: 1})
	require.NoError(t, err)
	_, err = r.Differential(ctx, g, Options{Delta: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, hooks.misses)
	assert.Equal(t, 1, hooks.sets)
	assert.Equal(t, 1, hooks.hits)
}

func TestRender(t *testing.T) {
	exp, err := expansion.Static(pathGraph(t))
	require.NoError(t, err)

	out, err := Render(context.Background(), exp, RenderOptions{Formats: []string{FormatJSON, FormatDOT}})
	require.NoError(t, err)
	assert.Contains(t, string(out[FormatDOT]), `"0_t0" -- "1_t0";`)

	var el map[string]any
	require.NoError(t, json.Unmarshal(out[FormatJSON], &el))
	assert.Contains(t, el, "stats")

	_, err = Render(context.Background(), exp, RenderOptions{Formats: []string{"gif"}})
	assert.Error(t, err)
}

func TestGraphHashStable(t *testing.T) {
	a, err := GraphHash(pathGraph(t))
	require.NoError(t, err)
	b, err := GraphHash(pathGraph(t))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
