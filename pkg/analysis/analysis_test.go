package analysis

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphderiv/pkg/temporal"
)

func pathGraph(t *testing.T) *temporal.Graph {
	t.Helper()
	g, err := temporal.New([]temporal.Vertex{0, 1, 2}, [][]temporal.Edge{{{U: 0, V: 1}}, {{U: 1, V: 2}}})
	require.NoError(t, err)
	return g
}

func randomGraph(t *testing.T, seed int64, n, snapshots int, p float64) *temporal.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vs := make([]temporal.Vertex, n)
	for i := range vs {
		vs[i] = temporal.Vertex(i)
	}
	snaps := make([][]temporal.Edge, snapshots)
	for s := range snaps {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p {
					snaps[s] = append(snaps[s], temporal.Edge{U: vs[i], V: vs[j]})
				}
			}
		}
	}
	g, err := temporal.New(vs, snaps)
	require.NoError(t, err)
	return g
}

func TestTreeWidthOfDifferential(t *testing.T) {
	g := pathGraph(t)

	tw, err := TreeWidthOfDifferential(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, tw)

	_, err = TreeWidthOfDifferential(g, 1, 5)
	require.ErrorIs(t, err, temporal.ErrInvalidWindow)
	var werr *temporal.WindowError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, temporal.WindowError{T: 1, Delta: 5, Lifetime: 2}, *werr)
}

func TestCompleteSnapshotWidth(t *testing.T) {
	// A single K4 snapshot has tree-width 3.
	var edges []temporal.Edge
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, temporal.Edge{U: temporal.Vertex(i), V: temporal.Vertex(j)})
		}
	}
	g, err := temporal.New([]temporal.Vertex{0, 1, 2, 3}, [][]temporal.Edge{edges})
	require.NoError(t, err)

	tw, err := TreeWidthOfDifferential(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, tw)
}

func TestDifferentialTreeWidth(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g := randomGraph(t, seed, 7, 5, 0.35)
		for delta := 1; delta <= g.Lifetime(); delta++ {
			dtw, err := DifferentialTreeWidth(g, delta)
			require.NoError(t, err)

			require.Len(t, dtw.PerT, g.Lifetime()-delta+1)
			widths := make([]int, len(dtw.PerT))
			for i, w := range dtw.PerT {
				assert.Equal(t, i, w.T)
				widths[i] = w.Width
			}
			assert.Equal(t, slices.Max(widths), dtw.Max)
			assert.Equal(t, delta, dtw.Delta)
		}
	}
}

func TestDifferentialTreeWidthEdgeless(t *testing.T) {
	g, err := temporal.New([]temporal.Vertex{0, 1, 2}, [][]temporal.Edge{{}, {}, {}})
	require.NoError(t, err)

	dtw, err := DifferentialTreeWidth(g, 1)
	require.NoError(t, err)
	assert.Zero(t, dtw.Max)
	assert.Equal(t, []WindowWidth{{0, 0}, {1, 0}, {2, 0}}, dtw.PerT)

	// With Δ=2 the red links make disjoint paths.
	dtw, err = DifferentialTreeWidth(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, dtw.Max)
}

func TestDifferentialTreeWidthInvalidDelta(t *testing.T) {
	g := pathGraph(t)
	for _, delta := range []int{0, -1, 3} {
		_, err := DifferentialTreeWidth(g, delta)
		require.ErrorIs(t, err, temporal.ErrInvalidDelta)
		var derr *temporal.DeltaError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, delta, derr.Delta)
	}
}

func TestMaxDegreeDifferential(t *testing.T) {
	g := pathGraph(t)

	deg, err := MaxDegreeDifferential(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	deg, err = MaxDegreeDifferential(g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	_, err = MaxDegreeDifferential(g, 2, 1)
	assert.ErrorIs(t, err, temporal.ErrInvalidWindow)
}

func TestAnalyze(t *testing.T) {
	g := pathGraph(t)

	r := Analyze(g, 0, 2)
	assert.Empty(t, r.Twins)
	require.NotNil(t, r.MaxDegree)
	require.NotNil(t, r.TreeWidth)
	require.NotNil(t, r.DTW)
	assert.Equal(t, 2, *r.MaxDegree)
	assert.Equal(t, 1, *r.TreeWidth)
	assert.Equal(t, 1, r.DTW.Max)
	assert.Equal(t, 2, r.Lifetime)
	assert.Equal(t, 3, r.VertexCount)
	assert.Equal(t, []int{1, 1}, r.SnapshotEdgeCounts)
	assert.Equal(t, 2, r.UnionEdgeCount)
	assert.NoError(t, r.WindowErr)
	assert.NoError(t, r.DeltaErr)
}

func TestAnalyzeInvalidWindow(t *testing.T) {
	g := pathGraph(t)

	r := Analyze(g, 1, 2)
	assert.Nil(t, r.MaxDegree)
	assert.Nil(t, r.TreeWidth)
	assert.ErrorIs(t, r.WindowErr, temporal.ErrInvalidWindow)
	require.NotNil(t, r.DTW, "delta 2 is still valid for the whole timeline")

	r = Analyze(g, 0, 3)
	assert.Nil(t, r.TreeWidth)
	assert.Nil(t, r.DTW)
	assert.ErrorIs(t, r.DeltaErr, temporal.ErrInvalidDelta)
	assert.Equal(t, 2, r.UnionEdgeCount)
}

func TestAnalyzeTwins(t *testing.T) {
	g, err := temporal.New([]temporal.Vertex{0, 1}, [][]temporal.Edge{{}, {}})
	require.NoError(t, err)

	r := Analyze(g, 0, 2)
	assert.Equal(t, []temporal.Pair{{U: 0, V: 1}}, r.Twins)
	assert.Equal(t, 1, *r.MaxDegree)
}
