package analysis

import (
	"github.com/matzehuels/graphderiv/pkg/temporal"
)

// Report gathers every metric for one temporal graph and one window.
// Window-dependent fields are nil when the window (or delta) is invalid
// for the graph; the corresponding error is kept in WindowErr / DeltaErr.
type Report struct {
	Twins              []temporal.Pair
	MaxDegree          *int
	TreeWidth          *int
	DTW                *DTW
	Lifetime           int
	VertexCount        int
	SnapshotEdgeCounts []int
	UnionEdgeCount     int

	WindowErr error
	DeltaErr  error
}

// Analyze computes a [Report] for window (t, delta). It never fails:
// invalid windows only blank the window-dependent fields.
func Analyze(g *temporal.Graph, t, delta int) Report {
	r := Report{
		Twins:              g.FindEternalTwins(),
		Lifetime:           g.Lifetime(),
		VertexCount:        g.VertexCount(),
		SnapshotEdgeCounts: g.SnapshotEdgeCounts(),
		UnionEdgeCount:     len(g.UnionEdges()),
	}

	if deg, err := MaxDegreeDifferential(g, t, delta); err != nil {
		r.WindowErr = err
	} else if tw, err := TreeWidthOfDifferential(g, t, delta); err != nil {
		r.WindowErr = err
	} else {
		r.MaxDegree, r.TreeWidth = &deg, &tw
	}

	if dtw, err := DifferentialTreeWidth(g, delta); err != nil {
		r.DeltaErr = err
	} else {
		r.DTW = &dtw
	}
	return r
}
