package io

import (
	stderrors "errors"
	"io"
	"io/fs"

	"github.com/codemapio/codemap/pkg/errors"
	"github.com/codemapio/codemap/pkg/graph"
)

// Read decodes and validates a JSON graph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "a", "data": {"type": "function", "name": "a"}}],
//	  "edges": [{"id": "e1", "source": "a", "target": "b", "type": "calls"}]
//	}
//
// Unknown node and edge types are normalized to "other", missing edge
// weights default to 1, and edges with missing endpoints are kept -
// downstream engines tolerate dangling edges by ignoring them.
//
// Read returns a coded error if:
//   - The JSON is malformed (INVALID_FORMAT)
//   - A node id is empty, malformed, or duplicated (INVALID_GRAPH)
//
// Read does not close r.
func Read(r io.Reader) (graph.Graph, error) {
	g, err := graph.ReadGraph(r)
	if err != nil {
		return graph.Graph{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed graph JSON")
	}
	if err := validate(g); err != nil {
		return graph.Graph{}, err
	}
	return g, nil
}

// Import reads a JSON graph file at path.
//
// Import opens the file, decodes it using [Read], and closes the file.
// A missing file yields a FILE_NOT_FOUND coded error; decode and
// validation failures carry the same codes as [Read].
func Import(path string) (graph.Graph, error) {
	g, err := graph.ReadGraphFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return graph.Graph{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file not found: %s", path)
		}
		return graph.Graph{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "cannot read graph: %s", path)
	}
	if err := validate(g); err != nil {
		return graph.Graph{}, err
	}
	return g, nil
}

func validate(g graph.Graph) error {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return errors.ValidateGraphIDs(ids)
}
