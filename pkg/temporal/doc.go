// Package temporal models a temporal graph: a fixed vertex set observed
// across a discrete sequence of snapshots, each snapshot being an
// independent set of undirected edges.
//
// # Overview
//
// A [Graph] G = (V, E_0, ..., E_{τ-1}) is built once with [New] from a
// vertex list and one edge list per snapshot, and is read-only afterwards.
// The number of snapshots τ is the graph's [Graph.Lifetime].
//
//	g, err := temporal.New(
//	    []temporal.Vertex{0, 1, 2},
//	    [][]temporal.Edge{{{U: 0, V: 1}}, {{U: 1, V: 2}}},
//	)
//
// Every snapshot must be a simple undirected graph on V: [New] rejects
// unknown endpoints, self-loops and repeated pairs.
//
// # Eternal Twins
//
// Two distinct vertices are eternal twins when their open neighborhoods
// agree in every snapshot. [Graph.FindEternalTwins] checks all pairs.
// Adjacent vertices can never be twins, because in a simple graph a vertex
// is never its own neighbor.
//
// # Errors
//
// Window and index violations are reported as typed errors that match the
// sentinels [ErrInvalidWindow], [ErrInvalidDelta] and [ErrOutOfRange] via
// errors.Is, and carry the offending parameters for diagnostics:
//
//	var werr *temporal.WindowError
//	if errors.As(err, &werr) {
//	    fmt.Println(werr.T, werr.Delta, werr.Lifetime)
//	}
//
// # Concurrency
//
// A Graph is immutable after construction and safe for concurrent use.
// Accessors return copies.
package temporal
