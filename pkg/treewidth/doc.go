// Package treewidth computes an upper bound on the tree-width of an
// undirected graph with the min-degree elimination heuristic.
//
// # Algorithm
//
// The heuristic repeatedly picks the vertex of minimum current degree,
// turns its remaining neighborhood into a clique (fill-in) and removes it.
// The reported width is the largest degree any vertex had at the moment it
// was eliminated. The elimination order defines a tree decomposition whose
// bags have at most width+1 vertices, so the value is a valid upper bound;
// it is not the exact tree-width, which is NP-hard to compute.
//
// # Tie-breaking
//
// Among vertices of equal minimum degree the one inserted first into the
// [Adjacency] wins. For expansions built by package expansion this means
// earliest time first, then vertex list order. Other tie-break rules give
// different, equally valid, bounds.
//
// # Usage
//
//	adj := treewidth.FromGraph(g)
//	res := treewidth.MinDegree(adj)
//	fmt.Println(res.Width, res.Order)
//
// The pending vertices are kept in a red-black tree keyed by
// (degree, insertion index), so each elimination step costs
// O(d² + d log n) for a vertex of degree d.
package treewidth
