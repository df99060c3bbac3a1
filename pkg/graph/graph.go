package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph - Serialization Format
// =============================================================================

// Graph is the canonical serialization format for dependency graphs.
// It is the wire format between the data-fetch collaborator (extractors,
// fixtures, editors) and the layout engines.
//
// The format is human-readable and round-trip safe: import → layout →
// export → re-import preserves node identity and edge structure.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Normalize canonicalizes enumerated values in place: unknown node and
// edge types collapse to "other", and missing edge weights become 1.
// Cluster assignment is left alone - that is the classifier's job.
func (g *Graph) Normalize() {
	for i := range g.Nodes {
		g.Nodes[i].Data.Type = g.Nodes[i].Data.Type.Normalize()
	}
	for i := range g.Edges {
		g.Edges[i].Type = g.Edges[i].Type.Normalize()
		g.Edges[i].Weight = g.Edges[i].EffectiveWeight()
	}
}

// MarshalGraph serializes a Graph to pretty-printed JSON bytes.
func MarshalGraph(g Graph) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// UnmarshalGraph deserializes JSON bytes to a Graph and normalizes
// enumerated values.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, fmt.Errorf("unmarshal graph: %w", err)
	}
	g.Normalize()
	return g, nil
}

// ReadGraph decodes a JSON graph from r.
// ReadGraph does not close r.
func ReadGraph(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode graph: %w", err)
	}
	g.Normalize()
	return g, nil
}

// WriteGraph encodes a graph as indented JSON and writes it to w.
func WriteGraph(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// ReadGraphFile reads a Graph from a JSON file.
func ReadGraphFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// WriteGraphFile writes a Graph to a JSON file.
func WriteGraphFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}
