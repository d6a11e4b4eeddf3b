// Package io provides JSON import and export for temporal graphs and their
// static expansions.
//
// # Graph Documents
//
// A temporal graph is stored as a vertex list plus one edge list per
// snapshot. Each edge is a two-element array:
//
//	{
//	  "vertices": [0, 1, 2],
//	  "snapshots": [
//	    [[0, 1]],
//	    [[1, 2]]
//	  ],
//	  "lifetime": 2
//	}
//
// The "lifetime" field is written for convenience and ignored on read: the
// lifetime is always the number of snapshots. Vertex order is preserved
// and defines the enumeration order used by the analysis packages.
//
// Use [ReadGraph] / [ReadGraphFile] to decode, and [WriteGraph] /
// [WriteGraphFile] to encode. [UnmarshalGraph] and [MarshalGraph] work on
// byte slices; [FromGraph] and [Document.ToGraph] convert between the
// document and [temporal.Graph] for callers that embed the document in a
// larger payload (the HTTP API does this).
//
// # Cytoscape Elements
//
// [Elements] renders an [expansion.Expansion] in the element format
// understood by Cytoscape.js:
//
//	{
//	  "nodes": [{"data": {"id": "0_t0", "label": "v0", "vertex": 0, "time": 0}}],
//	  "edges": [{"data": {"id": "b_0", "source": "0_t0", "target": "1_t0", "type": "black"}}],
//	  "stats": {"num_nodes": 6, "num_black_edges": 2, "num_red_edges": 3}
//	}
//
// Black edge ids are "b_<i>" and red edge ids "r_<i>", numbered in
// expansion order.
//
// # Concurrency
//
// All functions are safe for concurrent use. Decoded graphs are
// independent of the input.
package io
