// Package nodelink renders static expansions as node-link diagrams.
//
// # Overview
//
// The expansion of a window is drawn left to right, one column per time
// step. Nodes of the same time share a Graphviz rank; black (spatial)
// edges are drawn solid and red (temporal) edges red and dashed.
//
// # Usage
//
// Convert an expansion graph to DOT, then render to SVG:
//
//	sg, _ := exp.Graph()
//	dot := nodelink.ToDOT(sg, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [ToDOT] accepts any [sgraph.Graph]; rows become ranks, so a single
// snapshot graph renders as one column.
//
// # Options
//
//   - Detailed: labels include the time step below the vertex name
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion is done by the parent render package.
package nodelink
