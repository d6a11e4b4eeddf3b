package temporal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphderiv/pkg/sgraph"
)

// pathGraph is V={0,1,2} with E_0={01}, E_1={12}.
func pathGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := New([]Vertex{0, 1, 2}, [][]Edge{{{U: 0, V: 1}}, {{U: 1, V: 2}}})
	require.NoError(t, err)
	return g
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		vertices  []Vertex
		snapshots [][]Edge
		want      error
	}{
		{"DuplicateVertex", []Vertex{0, 0}, nil, ErrDuplicateVertex},
		{"UnknownEndpoint", []Vertex{0, 1}, [][]Edge{{{U: 0, V: 7}}}, ErrUnknownVertex},
		{"SelfLoop", []Vertex{0, 1}, [][]Edge{{{U: 1, V: 1}}}, ErrSelfLoop},
		{"ParallelReversed", []Vertex{0, 1}, [][]Edge{{{U: 0, V: 1}, {U: 1, V: 0}}}, ErrParallelEdge},
		{"SamePairAcrossSnapshots", []Vertex{0, 1}, [][]Edge{{{U: 0, V: 1}}, {{U: 1, V: 0}}}, nil},
		{"Empty", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.vertices, tt.snapshots)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	vs := []Vertex{0, 1}
	snaps := [][]Edge{{{U: 0, V: 1}}}
	g, err := New(vs, snaps)
	require.NoError(t, err)

	vs[0] = 9
	snaps[0][0] = Edge{U: 1, V: 1}

	assert.Equal(t, []Vertex{0, 1}, g.Vertices())
	edges, err := g.Snapshot(0)
	require.NoError(t, err)
	assert.Equal(t, []Edge{{U: 0, V: 1}}, edges)
}

func TestAccessors(t *testing.T) {
	g := pathGraph(t)

	assert.Equal(t, 2, g.Lifetime())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []int{1, 1}, g.SnapshotEdgeCounts())
	assert.Len(t, g.Snapshots(), 2)
	assert.True(t, g.Adjacent(0, 1, 0))
	assert.False(t, g.Adjacent(1, 0, 1))
	assert.False(t, g.Adjacent(5, 0, 1))

	n, err := g.Neighbors(1, 1)
	require.NoError(t, err)
	assert.Equal(t, map[Vertex]struct{}{2: {}}, n)
}

func TestSnapshotGraph(t *testing.T) {
	g := pathGraph(t)

	sg, err := g.SnapshotGraph(1)
	require.NoError(t, err)
	assert.Equal(t, 3, sg.NodeCount())
	assert.Equal(t, 1, sg.EdgeCount())
	assert.Equal(t, []sgraph.Edge{{From: "1", To: "2", Kind: sgraph.KindBlack}}, sg.Edges())
	assert.Equal(t, []int{1}, sg.RowIDs())

	for _, bad := range []int{-1, 2} {
		_, err := g.SnapshotGraph(bad)
		require.ErrorIs(t, err, ErrOutOfRange)
		var rerr *RangeError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, bad, rerr.T)
		assert.Equal(t, 2, rerr.Lifetime)
	}

	_, err = g.Snapshot(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.Neighbors(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestUnionEdges(t *testing.T) {
	g, err := New([]Vertex{0, 1, 2, 3}, [][]Edge{
		{{U: 2, V: 1}, {U: 3, V: 0}},
		{{U: 1, V: 2}},
		{{U: 0, V: 3}, {U: 0, V: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, []Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 2}}, g.UnionEdges())
	assert.Empty(t, (&Graph{}).UnionEdges())
}

func TestZeroGraph(t *testing.T) {
	var g Graph
	assert.Zero(t, g.Lifetime())
	assert.Empty(t, g.SnapshotEdgeCounts())
	assert.Empty(t, g.FindEternalTwins())
}

func TestEdgeCanonical(t *testing.T) {
	assert.Equal(t, Edge{U: 1, V: 4}, Edge{U: 4, V: 1}.Canonical())
	assert.Equal(t, Edge{U: 1, V: 4}, Edge{U: 1, V: 4}.Canonical())
}

func TestCheckWindow(t *testing.T) {
	tests := []struct {
		t, delta, lifetime int
		ok                 bool
	}{
		{0, 2, 2, true},
		{1, 1, 2, true},
		{-1, 1, 2, false},
		{0, 0, 2, false},
		{1, 5, 2, false},
		{0, 1, 0, false},
		{2, math.MaxInt, 2, false},
		{1, math.MaxInt, 3, false},
		{math.MaxInt, 1, 2, false},
	}
	for _, tt := range tests {
		err := CheckWindow(tt.t, tt.delta, tt.lifetime)
		if tt.ok {
			assert.NoError(t, err)
			continue
		}
		require.ErrorIs(t, err, ErrInvalidWindow)
		var werr *WindowError
		require.True(t, errors.As(err, &werr))
		assert.Equal(t, WindowError{T: tt.t, Delta: tt.delta, Lifetime: tt.lifetime}, *werr)
	}
}

func TestCheckDelta(t *testing.T) {
	assert.NoError(t, CheckDelta(1, 1))
	assert.NoError(t, CheckDelta(3, 3))
	assert.ErrorIs(t, CheckDelta(0, 3), ErrInvalidDelta)
	assert.ErrorIs(t, CheckDelta(4, 3), ErrInvalidDelta)
	assert.NotErrorIs(t, CheckDelta(4, 3), ErrInvalidWindow)
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&WindowError{T: 1, Delta: 5, Lifetime: 2}).Error(), "t=1, delta=5, lifetime=2")
	assert.Contains(t, (&DeltaError{Delta: 4, Lifetime: 3}).Error(), "delta=4")
	assert.Contains(t, (&RangeError{T: 7, Lifetime: 3}).Error(), "snapshot 7")
}
