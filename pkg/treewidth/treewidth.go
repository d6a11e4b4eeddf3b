package treewidth

import (
	"cmp"
	"slices"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/matzehuels/graphderiv/pkg/sgraph"
)

// Adjacency is an adjacency-set representation of a simple undirected
// graph that remembers vertex insertion order.
type Adjacency struct {
	order []string
	index map[string]int
	nbrs  map[string]map[string]struct{}
}

// NewAdjacency returns an empty adjacency structure.
func NewAdjacency() *Adjacency {
	return &Adjacency{
		index: make(map[string]int),
		nbrs:  make(map[string]map[string]struct{}),
	}
}

// AddVertex inserts v if it is not present yet.
func (a *Adjacency) AddVertex(v string) {
	if _, ok := a.index[v]; ok {
		return
	}
	a.index[v] = len(a.order)
	a.order = append(a.order, v)
	a.nbrs[v] = make(map[string]struct{})
}

// AddEdge inserts the undirected edge uv, adding missing endpoints.
// Self-loops are ignored.
func (a *Adjacency) AddEdge(u, v string) {
	a.AddVertex(u)
	a.AddVertex(v)
	if u == v {
		return
	}
	a.nbrs[u][v] = struct{}{}
	a.nbrs[v][u] = struct{}{}
}

// Len returns the number of vertices.
func (a *Adjacency) Len() int { return len(a.order) }

// Degree returns the number of neighbors of v.
func (a *Adjacency) Degree(v string) int { return len(a.nbrs[v]) }

// FromGraph copies the nodes and edges of g, keeping g's insertion order.
func FromGraph(g *sgraph.Graph) *Adjacency {
	a := NewAdjacency()
	for _, id := range g.NodeIDs() {
		a.AddVertex(id)
	}
	for _, e := range g.Edges() {
		a.AddEdge(e.From, e.To)
	}
	return a
}

// Result is the outcome of an elimination run.
type Result struct {
	// Width is the tree-width upper bound.
	Width int
	// Order lists the vertices in elimination order.
	Order []string
}

type queueKey struct {
	degree int
	index  int
}

func compareKeys(a, b any) int {
	ka, kb := a.(queueKey), b.(queueKey)
	return cmp.Or(cmp.Compare(ka.degree, kb.degree), cmp.Compare(ka.index, kb.index))
}

// MinDegree runs the min-degree elimination heuristic on a. The input is
// not modified.
func MinDegree(a *Adjacency) Result {
	nbrs := make(map[string]map[string]struct{}, len(a.nbrs))
	for v, set := range a.nbrs {
		cp := make(map[string]struct{}, len(set))
		for u := range set {
			cp[u] = struct{}{}
		}
		nbrs[v] = cp
	}

	queue := redblacktree.NewWith(compareKeys)
	for _, v := range a.order {
		queue.Put(queueKey{degree: len(nbrs[v]), index: a.index[v]}, v)
	}

	res := Result{Order: make([]string, 0, len(a.order))}
	for !queue.Empty() {
		node := queue.Left()
		key := node.Key.(queueKey)
		v := node.Value.(string)
		queue.Remove(key)

		res.Width = max(res.Width, key.degree)
		res.Order = append(res.Order, v)

		neighbors := make([]string, 0, len(nbrs[v]))
		for u := range nbrs[v] {
			neighbors = append(neighbors, u)
		}
		slices.SortFunc(neighbors, func(x, y string) int { return a.index[x] - a.index[y] })

		for _, u := range neighbors {
			queue.Remove(queueKey{degree: len(nbrs[u]), index: a.index[u]})
		}
		for i, u := range neighbors {
			delete(nbrs[u], v)
			for _, w := range neighbors[i+1:] {
				nbrs[u][w] = struct{}{}
				nbrs[w][u] = struct{}{}
			}
		}
		for _, u := range neighbors {
			queue.Put(queueKey{degree: len(nbrs[u]), index: a.index[u]}, u)
		}
		delete(nbrs, v)
	}
	return res
}

// Width returns the min-degree tree-width bound of g.
func Width(g *sgraph.Graph) int {
	return MinDegree(FromGraph(g)).Width
}
