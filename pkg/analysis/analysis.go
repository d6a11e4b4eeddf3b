package analysis

import (
	"github.com/matzehuels/graphderiv/pkg/expansion"
	"github.com/matzehuels/graphderiv/pkg/temporal"
	"github.com/matzehuels/graphderiv/pkg/treewidth"
)

// WindowWidth is the tree-width bound of the window starting at T.
type WindowWidth struct {
	T     int `json:"t"`
	Width int `json:"tw"`
}

// DTW is the Δ-differential tree-width of a temporal graph.
type DTW struct {
	Delta int           `json:"delta"`
	Max   int           `json:"dtw"`
	PerT  []WindowWidth `json:"per_t"`
}

// TreeWidthOfDifferential returns the tree-width bound of the expansion of
// window (t, delta).
func TreeWidthOfDifferential(g *temporal.Graph, t, delta int) (int, error) {
	exp, err := expansion.Build(g, t, delta)
	if err != nil {
		return 0, err
	}
	sg, err := exp.Graph()
	if err != nil {
		return 0, err
	}
	return treewidth.Width(sg), nil
}

// DifferentialTreeWidth computes the tree-width bound of every window of
// length delta, t = 0..τ-delta, and their maximum.
func DifferentialTreeWidth(g *temporal.Graph, delta int) (DTW, error) {
	if err := temporal.CheckDelta(delta, g.Lifetime()); err != nil {
		return DTW{}, err
	}
	out := DTW{Delta: delta, PerT: make([]WindowWidth, 0, g.Lifetime()-delta+1)}
	for t := 0; t <= g.Lifetime()-delta; t++ {
		w, err := TreeWidthOfDifferential(g, t, delta)
		if err != nil {
			return DTW{}, err
		}
		out.PerT = append(out.PerT, WindowWidth{T: t, Width: w})
		out.Max = max(out.Max, w)
	}
	return out, nil
}

// MaxDegreeDifferential returns the maximum degree in the expansion of
// window (t, delta).
func MaxDegreeDifferential(g *temporal.Graph, t, delta int) (int, error) {
	exp, err := expansion.Build(g, t, delta)
	if err != nil {
		return 0, err
	}
	return exp.MaxDegree(), nil
}
