package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/graphderiv/pkg/expansion"
)

// Edge types in Cytoscape output.
const (
	EdgeBlack = "black"
	EdgeRed   = "red"
)

// CyElements is the Cytoscape.js element set for one expansion.
type CyElements struct {
	Nodes []CyNode `json:"nodes"`
	Edges []CyEdge `json:"edges"`
	Stats CyStats  `json:"stats"`
}

type CyNode struct {
	Data CyNodeData `json:"data"`
}

type CyNodeData struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Vertex int    `json:"vertex"`
	Time   int    `json:"time"`
}

type CyEdge struct {
	Data CyEdgeData `json:"data"`
}

type CyEdgeData struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

type CyStats struct {
	NumNodes      int `json:"num_nodes"`
	NumBlackEdges int `json:"num_black_edges"`
	NumRedEdges   int `json:"num_red_edges"`
}

// Elements converts an expansion to Cytoscape elements. Nodes appear in
// expansion order; black edges precede red edges.
func Elements(x *expansion.Expansion) CyElements {
	out := CyElements{
		Nodes: make([]CyNode, len(x.Nodes)),
		Edges: make([]CyEdge, 0, len(x.Black)+len(x.Red)),
		Stats: CyStats{
			NumNodes:      len(x.Nodes),
			NumBlackEdges: len(x.Black),
			NumRedEdges:   len(x.Red),
		},
	}
	for i, tv := range x.Nodes {
		out.Nodes[i] = CyNode{Data: CyNodeData{
			ID:     tv.ID(),
			Label:  fmt.Sprintf("v%d", tv.Vertex),
			Vertex: int(tv.Vertex),
			Time:   tv.Time,
		}}
	}
	for i, l := range x.Black {
		out.Edges = append(out.Edges, cyEdge(fmt.Sprintf("b_%d", i), l, EdgeBlack))
	}
	for i, l := range x.Red {
		out.Edges = append(out.Edges, cyEdge(fmt.Sprintf("r_%d", i), l, EdgeRed))
	}
	return out
}

func cyEdge(id string, l expansion.Link, typ string) CyEdge {
	return CyEdge{Data: CyEdgeData{ID: id, Source: l.From.ID(), Target: l.To.ID(), Type: typ}}
}

// WriteElements encodes the Cytoscape elements of x to w.
func WriteElements(x *expansion.Expansion, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Elements(x)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
