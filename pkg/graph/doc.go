// Package graph defines the data model shared by all layout engines:
// typed nodes and edges, cluster assignments, and the JSON serialization
// format used to exchange graphs with external collaborators.
//
// # Data Model
//
// A [Node] carries a stable ID, a descriptive payload ([NodeData]) and a
// mutable [Position] owned by whichever layout engine ran last. An [Edge]
// is a typed, directed dependency between two node IDs with an optional
// weight.
//
// Enumerations ([NodeType], [EdgeType], [ClusterType]) are closed but
// forgiving: values unknown to this schema version normalize to
// "other"/"unknown" instead of failing, since upstream extractors may be
// newer than this library.
//
// # Dangling Edges
//
// Edges whose endpoints are missing from the current node set are not an
// error. [ValidEdges] drops them; every engine in this repository calls
// it before computing anything.
//
// # Serialization
//
// The [Graph] type is the canonical JSON format:
//
//	{
//	  "nodes": [{"id": "a", "data": {"type": "function", "name": "a", "file_path": "src/a.ts"}}],
//	  "edges": [{"id": "e1", "source": "a", "target": "b", "type": "calls"}]
//	}
package graph
