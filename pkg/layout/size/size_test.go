package size

import (
	"strings"
	"testing"

	"github.com/codemapio/codemap/pkg/graph"
)

func node(name, summary string) graph.Node {
	return graph.Node{
		ID: name,
		Data: graph.NodeData{
			Type:    graph.NodeTypeFunction,
			Name:    name,
			Summary: summary,
		},
	}
}

func TestEstimateMeasuredWins(t *testing.T) {
	n := node("verylongnamethatwouldestimatebigger", strings.Repeat("x", 200))
	n.Measured = &graph.Size{Width: 120, Height: 40}

	got := Estimate(n)
	want := graph.Size{Width: 120 + PaddingBuffer, Height: 40 + PaddingBuffer}
	if got != want {
		t.Errorf("Estimate = %+v, want measured + padding %+v", got, want)
	}
}

func TestEstimateBounds(t *testing.T) {
	tests := []struct {
		name    string
		node    graph.Node
		checkFn func(t *testing.T, s graph.Size)
	}{
		{
			name: "ShortNameClampsToMin",
			node: node("f", ""),
			checkFn: func(t *testing.T, s graph.Size) {
				if s.Width != MinWidth+PaddingBuffer {
					t.Errorf("width = %v, want min %v", s.Width, MinWidth+PaddingBuffer)
				}
			},
		},
		{
			name: "LongNameClampsToMax",
			node: node(strings.Repeat("a", 100), ""),
			checkFn: func(t *testing.T, s graph.Size) {
				if s.Width != MaxWidth+PaddingBuffer {
					t.Errorf("width = %v, want max %v", s.Width, MaxWidth+PaddingBuffer)
				}
			},
		},
		{
			name: "NoSummaryBaseHeight",
			node: node("f", ""),
			checkFn: func(t *testing.T, s graph.Size) {
				if s.Height != baseHeight+PaddingBuffer {
					t.Errorf("height = %v, want base %v", s.Height, baseHeight+PaddingBuffer)
				}
			},
		},
		{
			name: "SummaryAddsLines",
			node: node("f", strings.Repeat("x", 76)), // ceil(76/38) = 2 lines
			checkFn: func(t *testing.T, s graph.Size) {
				want := float64(baseHeight + 2*summaryLineH + summaryPadding + PaddingBuffer)
				if s.Height != want {
					t.Errorf("height = %v, want %v", s.Height, want)
				}
			},
		},
		{
			name: "LongSummaryForcesMaxWidth",
			node: node("f", strings.Repeat("x", 61)),
			checkFn: func(t *testing.T, s graph.Size) {
				if s.Width != MaxWidth+PaddingBuffer {
					t.Errorf("width = %v, want max for long summary", s.Width)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checkFn(t, Estimate(tt.node))
		})
	}
}

// Appending characters to the name or summary must never shrink the box.
func TestEstimateMonotonic(t *testing.T) {
	t.Run("Summary", func(t *testing.T) {
		prev := Estimate(node("fn", ""))
		for i := 1; i <= 300; i++ {
			cur := Estimate(node("fn", strings.Repeat("s", i)))
			if cur.Width < prev.Width || cur.Height < prev.Height {
				t.Fatalf("shrank at summary length %d: %+v -> %+v", i, prev, cur)
			}
			prev = cur
		}
	})

	t.Run("Name", func(t *testing.T) {
		prev := Estimate(node("", ""))
		for i := 1; i <= 150; i++ {
			cur := Estimate(node(strings.Repeat("n", i), ""))
			if cur.Width < prev.Width || cur.Height < prev.Height {
				t.Fatalf("shrank at name length %d: %+v -> %+v", i, prev, cur)
			}
			prev = cur
		}
	})
}

func TestEstimateAll(t *testing.T) {
	nodes := []graph.Node{node("a", ""), node("b", "summary text")}
	sizes := EstimateAll(nodes)

	if len(sizes) != 2 {
		t.Fatalf("sizes = %d entries, want 2", len(sizes))
	}
	for _, n := range nodes {
		if sizes[n.ID].IsZero() {
			t.Errorf("no size for %s", n.ID)
		}
	}
}
