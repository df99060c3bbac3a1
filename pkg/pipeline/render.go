package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/codemapio/codemap/pkg/io"
	"github.com/codemapio/codemap/pkg/observability"
	"github.com/codemapio/codemap/pkg/render/dot"
)

// RenderFromLayout renders a positioned layout into every requested
// format. The JSON format is the layout document itself; DOT and SVG go
// through the Graphviz renderer with pinned positions.
func RenderFromLayout(ctx context.Context, l io.Layout, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		observability.Pipeline().OnRenderStart(ctx, format)
		start := time.Now()

		data, err := renderFormat(l, format, opts)
		observability.Pipeline().OnRenderComplete(ctx, format, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(l io.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return io.MarshalLayout(l)
	case FormatDOT:
		return []byte(dot.ToDOT(l, dot.Options{Detailed: opts.Detailed})), nil
	case FormatSVG:
		return dot.RenderSVG(dot.ToDOT(l, dot.Options{Detailed: opts.Detailed}))
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}
