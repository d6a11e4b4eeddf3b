package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphderiv/pkg/temporal"
)

// Document is the JSON form of a temporal graph.
type Document struct {
	Vertices  []temporal.Vertex      `json:"vertices"`
	Snapshots [][][2]temporal.Vertex `json:"snapshots"`
	Lifetime  int                    `json:"lifetime"`
}

// ToGraph validates the document and builds the temporal graph. The
// Lifetime field is not consulted.
func (d Document) ToGraph() (*temporal.Graph, error) {
	snaps := make([][]temporal.Edge, len(d.Snapshots))
	for t, edges := range d.Snapshots {
		snaps[t] = make([]temporal.Edge, len(edges))
		for i, e := range edges {
			snaps[t][i] = temporal.Edge{U: e[0], V: e[1]}
		}
	}
	g, err := temporal.New(d.Vertices, snaps)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	return g, nil
}

// ToGraph is shorthand for d.ToGraph().
func ToGraph(d Document) (*temporal.Graph, error) { return d.ToGraph() }

// ReadGraph decodes a graph document from r. Unknown fields are ignored.
// ReadGraph does not close r.
func ReadGraph(r io.Reader) (*temporal.Graph, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return d.ToGraph()
}

// ReadGraphFile reads the graph document stored at path.
func ReadGraphFile(path string) (*temporal.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// UnmarshalGraph decodes a graph document from data.
func UnmarshalGraph(data []byte) (*temporal.Graph, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return d.ToGraph()
}
