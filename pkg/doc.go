// Package pkg provides the core libraries for graphderiv temporal graph
// analysis.
//
// # Overview
//
// A temporal graph is a fixed vertex set with a sequence of edge sets
// (snapshots). graphderiv studies it through its differential: the static
// expansion of a window of Δ consecutive snapshots, in which every vertex
// has one copy per snapshot, snapshot edges stay within a copy layer
// (black edges) and consecutive copies of a vertex are joined (red edges).
//
// The pkg directory is organized into three areas:
//
//  1. Domain logic: [temporal], [expansion], [sgraph], [treewidth], [analysis]
//  2. Data plumbing: [io], [generate], [cache], [render]
//  3. Orchestration: [pipeline], with [errors] and [observability] at the
//     service boundary
//
// # Architecture
//
// The typical data flow:
//
//	graph.json
//	     ↓
//	[io] package (decode + validate into a temporal.Graph)
//	     ↓
//	[expansion] package (window (t, Δ) → time-vertices, black and red links)
//	     ↓
//	[treewidth] / [analysis] packages (min-degree width, dtw_Δ, twins)
//	     ↓
//	Cytoscape JSON, DOT, SVG, PNG, PDF
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/graphderiv/pkg/analysis"
//	    "github.com/matzehuels/graphderiv/pkg/io"
//	)
//
//	g, err := io.ReadGraphFile("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dtw, err := analysis.DifferentialTreeWidth(g, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("dtw_2 =", dtw.Max)
//
// The [pipeline] package wraps these steps with caching and is what the
// CLI and HTTP API use.
//
// [temporal]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/temporal
// [expansion]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/expansion
// [sgraph]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/sgraph
// [treewidth]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/treewidth
// [analysis]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/analysis
// [io]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/io
// [generate]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/generate
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphderiv/pkg/observability
package pkg
