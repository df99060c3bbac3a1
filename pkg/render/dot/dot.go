// Package dot renders computed layouts to Graphviz DOT and SVG.
//
// The layout engines own positions; this package only translates them
// into a drawable artifact. Node positions are pinned (`pos="x,y!"`) so
// Graphviz draws exactly what the engine computed instead of running
// its own layout.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/codemapio/codemap/pkg/graph"
	"github.com/codemapio/codemap/pkg/io"
)

// Options configures DOT rendering.
type Options struct {
	// Detailed includes file path and summary lines in node labels.
	// When false, only the display name and type badge are shown.
	Detailed bool
}

// Graphviz point units per layout coordinate unit. Layout coordinates
// are CSS-pixel sized; drawing them 1:1 in points produces unreadably
// wide diagrams, so they are scaled down.
const pointsPerUnit = 0.75

// fillColors maps clusters to Graphviz fill colors.
var fillColors = map[graph.ClusterType]string{
	graph.ClusterFrontend: "lightblue",
	graph.ClusterBackend:  "lightsalmon",
	graph.ClusterShared:   "palegreen",
	graph.ClusterUnknown:  "white",
}

// ToDOT converts a positioned layout to Graphviz DOT with pinned node
// positions. The resulting DOT string renders with the neato engine
// (see [RenderSVG]); running it through plain dot would discard the
// positions.
//
// Highlighted nodes get a thicker, colored outline. Nodes are filled by
// cluster so the emergent grouping is visible in the artifact.
func ToDOT(l io.Layout, opts Options) string {
	highlighted := make(map[string]bool, len(l.Highlighted))
	for _, id := range l.Highlighted {
		highlighted[id] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph codemap {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=grey40, arrowsize=0.7];\n")
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		attrs := fmtAttrs(n, highlighted[n.ID], opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	ids := graph.NodeIndex(l.Nodes)
	for _, e := range l.Edges {
		if _, ok := ids[e.Source]; !ok {
			continue
		}
		if _, ok := ids[e.Target]; !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.Source, e.Target, string(e.Type))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n graph.Node, highlighted bool, opts Options) []string {
	// Graphviz y grows upward; layout y grows downward.
	x := n.Position.X * pointsPerUnit
	y := -n.Position.Y * pointsPerUnit

	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed)),
		fmt.Sprintf("pos=\"%.2f,%.2f!\"", x, y),
		fmt.Sprintf("fillcolor=%s", fillColor(n.Data.Cluster)),
	}
	if highlighted {
		attrs = append(attrs, "color=orange", "penwidth=3")
	}
	return attrs
}

func fmtLabel(n graph.Node, detailed bool) string {
	label := n.DisplayName()
	if t := n.Data.Type; t != "" {
		label += "\n[" + string(t) + "]"
	}
	if !detailed {
		return label
	}

	if n.Data.FilePath != "" {
		label += "\n" + n.Data.FilePath
	}
	if n.Data.Summary != "" {
		label += "\n" + n.Data.Summary
	}
	return label
}

func fillColor(c graph.ClusterType) string {
	if color, ok := fillColors[c]; ok {
		return color
	}
	return fillColors[graph.ClusterUnknown]
}

// RenderSVG renders a pinned-position DOT graph to SVG using the neato
// engine, which honors pos attributes ending in "!".
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.-]+)\s+([0-9.-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element to a zero-origin
// viewBox with explicit dimensions, which embeds more predictably.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
