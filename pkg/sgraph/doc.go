// Package sgraph provides a simple undirected graph whose nodes are
// organized into rows.
//
// # Overview
//
// The static expansion of a temporal graph lays out one copy of the vertex
// set per time step. This package stores that layout: every node carries
// the Row (time step) it lives on, and every edge carries a [Kind] telling
// whether it joins two nodes of the same row ([KindBlack]) or the same
// vertex on consecutive rows ([KindRed]). Snapshot graphs use the same type
// with a single row.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode] and edges with
// [Graph.AddEdge]:
//
//	g := sgraph.New()
//	_ = g.AddNode(sgraph.Node{ID: "0_t0", Row: 0})
//	_ = g.AddNode(sgraph.Node{ID: "0_t1", Row: 1})
//	_ = g.AddEdge(sgraph.Edge{From: "0_t0", To: "0_t1", Kind: sgraph.KindRed})
//
// The graph is simple: self-loops and parallel edges are rejected at
// insertion time. [Graph.Validate] checks that black edges stay on one row
// and red edges join consecutive rows.
//
// # Ordering
//
// [Graph.NodeIDs] and [Graph.Edges] return elements in insertion order. The
// tree-width estimator relies on this to break ties deterministically.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. A fully built graph
// may be read from several goroutines.
package sgraph
