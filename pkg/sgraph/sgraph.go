package sgraph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownNode is returned by [Graph.AddEdge] when either endpoint
	// does not exist.
	ErrUnknownNode = errors.New("unknown node")

	// ErrSelfLoop is returned by [Graph.AddEdge] for an edge from a node to itself.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrParallelEdge is returned by [Graph.AddEdge] when the two endpoints
	// are already adjacent.
	ErrParallelEdge = errors.New("parallel edges are not allowed")

	// ErrRowMismatch is returned by [Graph.Validate] when an edge's kind
	// disagrees with the rows of its endpoints.
	ErrRowMismatch = errors.New("edge kind does not match endpoint rows")
)

// Metadata stores arbitrary key-value pairs attached to nodes.
type Metadata map[string]any

// Kind distinguishes same-row edges from edges between consecutive rows.
type Kind int

const (
	// KindBlack joins two nodes on the same row.
	KindBlack Kind = iota
	// KindRed joins two nodes on consecutive rows.
	KindRed
)

// String returns "black" or "red".
func (k Kind) String() string {
	if k == KindRed {
		return "red"
	}
	return "black"
}

// Node is a vertex of the graph placed on a row.
type Node struct {
	ID   string   // Unique identifier
	Row  int      // Time step (0 for plain snapshot graphs)
	Meta Metadata // Never nil after AddNode
}

// Edge is an undirected edge. From and To are stored in insertion order
// but carry no direction.
type Edge struct {
	From string
	To   string
	Kind Kind
}

// Graph is a simple undirected graph with row-indexed nodes.
//
// The zero value is not usable; call [New].
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []Edge
	adj   map[string]map[string]struct{}
	rows  map[int][]*Node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string]map[string]struct{}),
		rows:  make(map[int][]*Node),
	}
}

// AddNode adds a node and indexes it by row.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	g.nodes[n.ID] = node
	g.order = append(g.order, n.ID)
	g.adj[n.ID] = make(map[string]struct{})
	g.rows[n.Row] = append(g.rows[n.Row], node)
	return nil
}

// AddEdge adds an undirected edge between two existing, distinct,
// non-adjacent nodes.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownNode
	}
	if e.From == e.To {
		return ErrSelfLoop
	}
	if _, dup := g.adj[e.From][e.To]; dup {
		return ErrParallelEdge
	}
	g.edges = append(g.edges, e)
	g.adj[e.From][e.To] = struct{}{}
	g.adj[e.To][e.From] = struct{}{}
	return nil
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodesInRow returns the nodes on a row in insertion order.
func (g *Graph) NodesInRow(row int) []*Node { return g.rows[row] }

// RowIDs returns the row indices in ascending order.
func (g *Graph) RowIDs() []int { return slices.Sorted(maps.Keys(g.rows)) }

// Validate checks that black edges stay within one row and red edges
// join consecutive rows.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		from, to := g.nodes[e.From], g.nodes[e.To]
		switch e.Kind {
		case KindBlack:
			if from.Row != to.Row {
				return ErrRowMismatch
			}
		case KindRed:
			if d := from.Row - to.Row; d != 1 && d != -1 {
				return ErrRowMismatch
			}
		}
	}
	return nil
}
