// Package expansion builds the static expansion of a temporal graph over a
// window of snapshots.
//
// # Definition
//
// For a window (t, Δ) of a temporal graph with lifetime τ, the expansion has
//
//   - one node (v, time) for every vertex v and every time in [t, t+Δ-1];
//   - a black link (u, time)-(v, time) for every edge uv of snapshot time;
//   - a red link (v, time)-(v, time+1) for every vertex and every time
//     except the last one of the window.
//
// The window must satisfy t >= 0, Δ >= 1 and t+Δ-1 < τ; [Build] otherwise
// returns a [temporal.WindowError] and no expansion. [Static] expands the
// whole timeline and is equivalent to Build(g, 0, τ).
//
// # Enumeration Order
//
// Nodes and links are produced time by time in ascending order; within a
// time, nodes follow the graph's vertex order and black links follow the
// snapshot's edge order. The order carries no meaning but is stable, which
// keeps rendered output and tree-width tie-breaks reproducible.
//
// # Plain Graph View
//
// [Expansion.Graph] converts the expansion to an [sgraph.Graph] with one
// row per time, which is what the tree-width estimator consumes.
package expansion
