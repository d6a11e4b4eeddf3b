package temporal

// FindEternalTwins returns every pair of distinct vertices whose open
// neighborhoods are equal in every snapshot.
//
// Pairs are enumerated over the vertex list order, u before v, so the
// result is deterministic. The check for a pair stops at the first
// snapshot where the neighborhoods differ; a pair that is adjacent in any
// snapshot is never reported.
//
// With no snapshots the condition holds vacuously and every pair is
// returned.
func (g *Graph) FindEternalTwins() []Pair {
	var twins []Pair
	for i, u := range g.vertices {
		for _, v := range g.vertices[i+1:] {
			if g.twins(u, v) {
				twins = append(twins, Pair{U: u, V: v})
			}
		}
	}
	return twins
}

// IsEternalTwin reports whether u and v are distinct eternal twins.
func (g *Graph) IsEternalTwin(u, v Vertex) bool {
	return u != v && g.twins(u, v)
}

func (g *Graph) twins(u, v Vertex) bool {
	for t := range g.snapshots {
		if g.Adjacent(t, u, v) {
			return false
		}
		nu, nv := g.adj[t][u], g.adj[t][v]
		if len(nu) != len(nv) {
			return false
		}
		for w := range nu {
			if _, ok := nv[w]; !ok {
				return false
			}
		}
	}
	return true
}
