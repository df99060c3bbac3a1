// Package pkg provides the core libraries for Codemap dependency-graph
// visualization.
//
// # Overview
//
// Codemap turns code dependency graphs (functions, classes, components,
// endpoints and the calls/imports between them) into positioned visual
// layouts. The pkg directory is organized into these areas:
//
//  1. [graph] - Serialization types for graphs and layouts
//  2. [cluster] - Architectural cluster classification from file paths
//  3. [filter] - View filtering and search highlighting
//  4. [layout] - Layout engines (hierarchical and force-directed)
//  5. [render] - DOT/SVG rendering with pinned positions
//  6. [pipeline] - Orchestration (classify → filter → layout → render)
//  7. [cache] - Content-addressed result caching
//
// # Architecture
//
// The typical data flow through Codemap:
//
//	graph.json (parser output)
//	         ↓
//	    [cluster] package (assign frontend/backend/shared clusters)
//	         ↓
//	    [filter] package (reduce the view, compute highlights)
//	         ↓
//	    [layout/hier] or [layout/force] (position nodes)
//	         ↓
//	    [render/dot] package (DOT, SVG)
//	         ↓
//	    JSON/DOT/SVG output
//
// # Quick Start
//
// Run the full pipeline over a graph:
//
//	import (
//	    "context"
//	    "github.com/codemapio/codemap/pkg/io"
//	    "github.com/codemapio/codemap/pkg/pipeline"
//	)
//
//	g, _ := io.Import("graph.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Execute(context.Background(), g, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := res.Artifacts[pipeline.FormatSVG]
//
// Lower-level entry points are exported too: [layout/hier.Layout] and
// [layout/force.Solve] position a node set directly, and
// [layout/force.Animate] streams positions tick by tick for live views.
package pkg
