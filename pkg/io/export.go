package io

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/codemapio/codemap/pkg/errors"
	"github.com/codemapio/codemap/pkg/graph"
)

// Layout is the serialization format for a computed layout: the
// positioned nodes, the surviving edges, and any highlighted node ids.
// This format can be re-imported with [Read] for round-trip processing
// (the highlight list is a display hint and is dropped on re-import).
type Layout struct {
	Nodes       []graph.Node `json:"nodes"`
	Edges       []graph.Edge `json:"edges"`
	Highlighted []string     `json:"highlighted,omitempty"`
}

// NewLayout assembles a Layout document. The highlighted set is
// flattened to a sorted slice so output is deterministic.
func NewLayout(nodes []graph.Node, edges []graph.Edge, highlighted map[string]struct{}) Layout {
	out := Layout{Nodes: nodes, Edges: edges}
	for id := range highlighted {
		out.Highlighted = append(out.Highlighted, id)
	}
	sort.Strings(out.Highlighted)
	return out
}

// MarshalLayout serializes a layout document to pretty-printed JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}

// UnmarshalLayout deserializes a layout document from JSON.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal layout")
	}
	return l, nil
}

// WriteLayout encodes a layout document as indented JSON and writes it
// to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return nil
}

// ExportLayout writes a layout document to a JSON file at path.
// This is a convenience wrapper around [WriteLayout] for file-based output.
func ExportLayout(l Layout, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteLayout(l, f)
}
