package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphderiv/pkg/temporal"
)

// FromGraph converts g to its document form. Snapshot edges keep their
// original orientation and order.
func FromGraph(g *temporal.Graph) Document {
	snaps := g.Snapshots()
	d := Document{
		Vertices:  g.Vertices(),
		Snapshots: make([][][2]temporal.Vertex, len(snaps)),
		Lifetime:  g.Lifetime(),
	}
	if d.Vertices == nil {
		d.Vertices = []temporal.Vertex{}
	}
	for t, edges := range snaps {
		d.Snapshots[t] = make([][2]temporal.Vertex, len(edges))
		for i, e := range edges {
			d.Snapshots[t][i] = [2]temporal.Vertex{e.U, e.V}
		}
	}
	return d
}

// WriteGraph encodes g as an indented JSON document and writes it to w.
func WriteGraph(g *temporal.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes g to a JSON file at path.
func WriteGraphFile(g *temporal.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// MarshalGraph returns the compact JSON document for g.
func MarshalGraph(g *temporal.Graph) ([]byte, error) {
	data, err := json.Marshal(FromGraph(g))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}
