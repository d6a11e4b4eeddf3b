// Package analysis computes structural metrics of temporal graphs over
// windows of their static expansion.
//
// # Metrics
//
//   - [TreeWidthOfDifferential]: tree-width bound of the expansion of one
//     window (t, Δ).
//   - [DifferentialTreeWidth]: the Δ-differential tree-width, i.e. the
//     maximum of the above over every window of length Δ, together with the
//     per-window series.
//   - [MaxDegreeDifferential]: the largest degree in one window's
//     expansion, counting black and red links.
//   - [Analyze]: the full report consumed by the HTTP and CLI layers.
//
// Tree-widths are upper bounds from the min-degree heuristic in package
// treewidth, not exact values.
//
// All functions are pure: they read the temporal graph, build fresh
// expansions, and return either a complete result or an error.
package analysis
