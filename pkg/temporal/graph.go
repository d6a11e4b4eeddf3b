package temporal

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/matzehuels/graphderiv/pkg/sgraph"
)

// Vertex identifies a vertex. Identifiers are ordered; the order is used
// for canonical edge representation.
type Vertex int

// String returns the decimal form of the vertex, used as a node ID in
// snapshot graphs.
func (v Vertex) String() string { return strconv.Itoa(int(v)) }

// Edge is an unordered pair of vertices.
type Edge struct {
	U Vertex
	V Vertex
}

// Canonical returns the edge with U <= V.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// Pair is an unordered pair of distinct vertices reported by
// [Graph.FindEternalTwins]. U precedes V in the graph's vertex order.
type Pair struct {
	U Vertex
	V Vertex
}

// Graph is an immutable temporal graph.
//
// The zero value is a valid graph with no vertices and no snapshots.
type Graph struct {
	vertices  []Vertex
	snapshots [][]Edge
	adj       []map[Vertex]map[Vertex]struct{} // per snapshot
}

// New validates and builds a temporal graph. The vertex slice defines the
// canonical enumeration order. Both slices are copied.
func New(vertices []Vertex, snapshots [][]Edge) (*Graph, error) {
	known := make(map[Vertex]struct{}, len(vertices))
	for _, v := range vertices {
		if _, dup := known[v]; dup {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrDuplicateVertex)
		}
		known[v] = struct{}{}
	}

	g := &Graph{
		vertices:  slices.Clone(vertices),
		snapshots: make([][]Edge, len(snapshots)),
		adj:       make([]map[Vertex]map[Vertex]struct{}, len(snapshots)),
	}
	for t, edges := range snapshots {
		adj := make(map[Vertex]map[Vertex]struct{}, len(vertices))
		for _, e := range edges {
			if _, ok := known[e.U]; !ok {
				return nil, fmt.Errorf("snapshot %d: edge (%d,%d): %w", t, e.U, e.V, ErrUnknownVertex)
			}
			if _, ok := known[e.V]; !ok {
				return nil, fmt.Errorf("snapshot %d: edge (%d,%d): %w", t, e.U, e.V, ErrUnknownVertex)
			}
			if e.U == e.V {
				return nil, fmt.Errorf("snapshot %d: edge (%d,%d): %w", t, e.U, e.V, ErrSelfLoop)
			}
			if _, dup := adj[e.U][e.V]; dup {
				return nil, fmt.Errorf("snapshot %d: edge (%d,%d): %w", t, e.U, e.V, ErrParallelEdge)
			}
			link(adj, e.U, e.V)
			link(adj, e.V, e.U)
		}
		g.snapshots[t] = slices.Clone(edges)
		g.adj[t] = adj
	}
	return g, nil
}

func link(adj map[Vertex]map[Vertex]struct{}, u, v Vertex) {
	set, ok := adj[u]
	if !ok {
		set = make(map[Vertex]struct{})
		adj[u] = set
	}
	set[v] = struct{}{}
}

// Lifetime returns τ, the number of snapshots.
func (g *Graph) Lifetime() int { return len(g.snapshots) }

// Vertices returns the vertex list in canonical order.
func (g *Graph) Vertices() []Vertex { return slices.Clone(g.vertices) }

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

func (g *Graph) checkIndex(t int) error {
	if t < 0 || t >= len(g.snapshots) {
		return &RangeError{T: t, Lifetime: len(g.snapshots)}
	}
	return nil
}

// Snapshot returns the edge list of snapshot t in input order.
func (g *Graph) Snapshot(t int) ([]Edge, error) {
	if err := g.checkIndex(t); err != nil {
		return nil, err
	}
	return slices.Clone(g.snapshots[t]), nil
}

// Snapshots returns a copy of every snapshot's edge list.
func (g *Graph) Snapshots() [][]Edge {
	out := make([][]Edge, len(g.snapshots))
	for t, edges := range g.snapshots {
		out[t] = slices.Clone(edges)
	}
	return out
}

// SnapshotGraph returns snapshot t as a simple undirected graph on all
// vertices. Node IDs are the decimal vertex identifiers, all on row t.
func (g *Graph) SnapshotGraph(t int) (*sgraph.Graph, error) {
	if err := g.checkIndex(t); err != nil {
		return nil, err
	}
	sg := sgraph.New()
	for _, v := range g.vertices {
		if err := sg.AddNode(sgraph.Node{ID: v.String(), Row: t}); err != nil {
			return nil, fmt.Errorf("add vertex %d: %w", v, err)
		}
	}
	for _, e := range g.snapshots[t] {
		if err := sg.AddEdge(sgraph.Edge{From: e.U.String(), To: e.V.String(), Kind: sgraph.KindBlack}); err != nil {
			return nil, fmt.Errorf("add edge (%d,%d): %w", e.U, e.V, err)
		}
	}
	return sg, nil
}

// Neighbors returns the open neighborhood of v in snapshot t.
func (g *Graph) Neighbors(t int, v Vertex) (map[Vertex]struct{}, error) {
	if err := g.checkIndex(t); err != nil {
		return nil, err
	}
	out := make(map[Vertex]struct{}, len(g.adj[t][v]))
	for u := range g.adj[t][v] {
		out[u] = struct{}{}
	}
	return out, nil
}

// Adjacent reports whether u and v share an edge in snapshot t.
// An out-of-range t reports false.
func (g *Graph) Adjacent(t int, u, v Vertex) bool {
	if t < 0 || t >= len(g.adj) {
		return false
	}
	_, ok := g.adj[t][u][v]
	return ok
}

// SnapshotEdgeCounts returns the number of edges in each snapshot.
func (g *Graph) SnapshotEdgeCounts() []int {
	counts := make([]int, len(g.snapshots))
	for t, edges := range g.snapshots {
		counts[t] = len(edges)
	}
	return counts
}

// UnionEdges returns the edge set of the union graph: every pair that is
// an edge in at least one snapshot, in canonical form, sorted by (U, V).
func (g *Graph) UnionEdges() []Edge {
	seen := make(map[Edge]struct{})
	var out []Edge
	for _, edges := range g.snapshots {
		for _, e := range edges {
			c := e.Canonical()
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		return cmp.Or(cmp.Compare(a.U, b.U), cmp.Compare(a.V, b.V))
	})
	return out
}
