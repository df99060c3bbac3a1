// Package io provides validated JSON import and export for dependency
// graphs and computed layouts.
//
// # Overview
//
// This package is the file boundary of the layout engines. The engines
// themselves work on in-memory [graph.Graph] values; this package reads
// those from disk with validation and coded errors, and writes computed
// layouts back out. The format is designed for:
//
//   - Integration with external tools that produce or consume graph data
//   - Round-trip processing: import, lay out, export, re-import
//
// # JSON Format
//
// Graph input has two top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": "a", "data": {"type": "function", "name": "a", "file_path": "src/a.ts"}},
//	    {"id": "b", "data": {"type": "component", "name": "B"}}
//	  ],
//	  "edges": [
//	    {"id": "e1", "source": "a", "target": "b", "type": "calls"}
//	  ]
//	}
//
// Node ids must be unique and non-empty; everything else is optional.
// Unknown enumerated values normalize to "other" rather than failing,
// since upstream data may carry types unknown to this schema version.
// Edges referencing missing nodes are kept on import - engines drop
// them silently during computation.
//
// Layout output adds positions and an optional highlight list:
//
//	{
//	  "nodes": [{"id": "a", "position": {"x": -115, "y": 0}, ...}],
//	  "edges": [...],
//	  "highlighted": ["a"]
//	}
//
// # Errors
//
// All failures carry [errors.Code] values: INVALID_FORMAT for malformed
// JSON, INVALID_GRAPH for id problems, FILE_NOT_FOUND for missing input
// files. Use errors.Is from this module's errors package to branch on
// them.
package io
