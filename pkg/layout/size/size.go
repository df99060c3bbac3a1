// Package size estimates a node's on-screen rectangle from its textual
// content when the rendering layer has not supplied a measured size.
//
// The estimate is intentionally crude - fixed per-character pixel widths
// and a fixed line-wrap column - because it only needs to be good enough
// for collision avoidance and rank spacing, and it must be monotonic:
// longer text never yields a smaller box.
package size

import (
	"math"

	"github.com/codemapio/codemap/pkg/graph"
)

// Estimation constants, all in layout units (roughly pixels).
const (
	// PaddingBuffer is added to both dimensions of every result,
	// measured or estimated.
	PaddingBuffer = 30

	MinWidth = 200
	MaxWidth = 280

	iconWidth     = 24 // type icon allowance
	nameCharWidth = 6  // approximate px per name character
	badgeCharW    = 5  // approximate px per type badge character
	badgePadding  = 16 // badge pill padding

	baseHeight = 62 // header + footer allowance

	summaryWrapCol   = 38 // assumed characters per wrapped summary line
	summaryLineH     = 16 // height per wrapped line
	summaryPadding   = 12 // vertical padding around the summary block
	longSummaryChars = 60 // summaries past this force MaxWidth
)

// Estimate returns the node's layout footprint.
//
// A measured size supplied by the rendering layer is authoritative: it is
// returned immediately with the padding buffer applied. Otherwise the
// footprint is derived from the name, the type badge, and the optional
// summary text.
func Estimate(n graph.Node) graph.Size {
	if n.Measured != nil && !n.Measured.IsZero() {
		return graph.Size{
			Width:  n.Measured.Width + PaddingBuffer,
			Height: n.Measured.Height + PaddingBuffer,
		}
	}

	nameW := float64(len(n.Data.Name)) * nameCharWidth
	badgeW := float64(len(n.Data.Type))*badgeCharW + badgePadding

	width := clamp(iconWidth+nameW+badgeW, MinWidth, MaxWidth)
	height := float64(baseHeight)

	if s := n.Data.Summary; s != "" {
		lines := math.Ceil(float64(len(s)) / summaryWrapCol)
		height += lines*summaryLineH + summaryPadding
		if len(s) > longSummaryChars {
			width = MaxWidth
		}
	}

	return graph.Size{
		Width:  width + PaddingBuffer,
		Height: height + PaddingBuffer,
	}
}

// EstimateAll returns the footprint of every node, keyed by node ID.
// Both layout engines consume this map.
func EstimateAll(nodes []graph.Node) map[string]graph.Size {
	sizes := make(map[string]graph.Size, len(nodes))
	for _, n := range nodes {
		sizes[n.ID] = Estimate(n)
	}
	return sizes
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
