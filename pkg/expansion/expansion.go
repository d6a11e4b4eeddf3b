package expansion

import (
	"fmt"

	"github.com/matzehuels/graphderiv/pkg/sgraph"
	"github.com/matzehuels/graphderiv/pkg/temporal"
)

// TimeVertex is a copy of a vertex at one time step.
type TimeVertex struct {
	Vertex temporal.Vertex
	Time   int
}

// ID returns the node identifier "<vertex>_t<time>".
func (tv TimeVertex) ID() string { return fmt.Sprintf("%d_t%d", tv.Vertex, tv.Time) }

// Link is an undirected edge between two time-vertices.
type Link struct {
	From TimeVertex
	To   TimeVertex
}

// Window is a contiguous range of Delta snapshots starting at T.
type Window struct {
	T     int
	Delta int
}

// Last returns the index of the last snapshot in the window.
func (w Window) Last() int { return w.T + w.Delta - 1 }

// Expansion is the static expansion of one window. It is built fresh per
// call and owns its slices.
type Expansion struct {
	Window Window
	Nodes  []TimeVertex
	Black  []Link
	Red    []Link
}

// Build expands the window (t, delta) of g.
func Build(g *temporal.Graph, t, delta int) (*Expansion, error) {
	if err := temporal.CheckWindow(t, delta, g.Lifetime()); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	exp := &Expansion{
		Window: Window{T: t, Delta: delta},
		Nodes:  make([]TimeVertex, 0, len(vertices)*delta),
		Red:    make([]Link, 0, len(vertices)*(delta-1)),
	}

	for time := t; time < t+delta; time++ {
		for _, v := range vertices {
			exp.Nodes = append(exp.Nodes, TimeVertex{Vertex: v, Time: time})
		}

		edges, err := g.Snapshot(time)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			exp.Black = append(exp.Black, Link{
				From: TimeVertex{Vertex: e.U, Time: time},
				To:   TimeVertex{Vertex: e.V, Time: time},
			})
		}

		if time < t+delta-1 {
			for _, v := range vertices {
				exp.Red = append(exp.Red, Link{
					From: TimeVertex{Vertex: v, Time: time},
					To:   TimeVertex{Vertex: v, Time: time + 1},
				})
			}
		}
	}
	return exp, nil
}

// Static expands the whole timeline of g.
func Static(g *temporal.Graph) (*Expansion, error) {
	return Build(g, 0, g.Lifetime())
}

// Graph returns the expansion as a plain undirected graph. Node rows are
// times; black links become [sgraph.KindBlack] edges and red links
// [sgraph.KindRed] edges.
func (x *Expansion) Graph() (*sgraph.Graph, error) {
	g := sgraph.New()
	for _, n := range x.Nodes {
		node := sgraph.Node{
			ID:   n.ID(),
			Row:  n.Time,
			Meta: sgraph.Metadata{"vertex": int(n.Vertex), "time": n.Time},
		}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("add node %s: %w", node.ID, err)
		}
	}
	add := func(links []Link, kind sgraph.Kind) error {
		for _, l := range links {
			e := sgraph.Edge{From: l.From.ID(), To: l.To.ID(), Kind: kind}
			if err := g.AddEdge(e); err != nil {
				return fmt.Errorf("add %s edge %s-%s: %w", kind, e.From, e.To, err)
			}
		}
		return nil
	}
	if err := add(x.Black, sgraph.KindBlack); err != nil {
		return nil, err
	}
	if err := add(x.Red, sgraph.KindRed); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Degrees returns the degree of every time-vertex, counting black and red
// links alike.
func (x *Expansion) Degrees() map[TimeVertex]int {
	deg := make(map[TimeVertex]int, len(x.Nodes))
	for _, n := range x.Nodes {
		deg[n] = 0
	}
	for _, links := range [][]Link{x.Black, x.Red} {
		for _, l := range links {
			deg[l.From]++
			deg[l.To]++
		}
	}
	return deg
}

// MaxDegree returns the largest degree in the expansion, or 0 when it has
// no nodes.
func (x *Expansion) MaxDegree() int {
	best := 0
	for _, d := range x.Degrees() {
		best = max(best, d)
	}
	return best
}
