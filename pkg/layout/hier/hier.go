// Package hier implements the deterministic ranked (top-down) layout
// for the connected subgraph, plus grid packing for orphan nodes.
//
// Connected nodes go through a layered pipeline: cycle breaking, longest
// path row assignment, barycenter crossing reduction, then coordinate
// assignment from estimated node sizes. Orphans - nodes with no incident
// edges - never enter the ranked solver; feeding them through would
// produce a smear of degenerate single-node rows. They are packed into
// small grids below the connected graph's bounding box instead.
//
// The whole pass is deterministic: identical input and config produce
// bit-identical positions.
package hier

import (
	"github.com/codemapio/codemap/pkg/dag"
	"github.com/codemapio/codemap/pkg/graph"
	"github.com/codemapio/codemap/pkg/layout"
	"github.com/codemapio/codemap/pkg/layout/size"
)

// Layout computes positions for every node and returns a new node slice
// in input order. The input slices are never mutated. Edges with missing
// endpoints are ignored. An empty node slice yields an empty result.
func Layout(nodes []graph.Node, edges []graph.Edge, cfg layout.Config) []graph.Node {
	cfg.FillDefaults()

	out := graph.CloneNodes(nodes)
	if len(out) == 0 {
		return out
	}

	valid := graph.ValidEdges(out, edges)
	connected := make(map[string]bool, len(out))
	for _, e := range valid {
		connected[e.Source] = true
		connected[e.Target] = true
	}

	sizes := size.EstimateAll(out)

	var connectedIdx, orphanIdx []int
	for i := range out {
		if connected[out[i].ID] {
			connectedIdx = append(connectedIdx, i)
		} else {
			orphanIdx = append(orphanIdx, i)
		}
	}

	box := layoutConnected(out, connectedIdx, valid, sizes, cfg)
	layoutOrphans(out, orphanIdx, box, len(connectedIdx) > 0, cfg)

	return out
}

// bounds is the bounding box of placed connected nodes, tracked with
// top-left positions plus sizes.
type bounds struct {
	minX, minY float64
	maxX, maxY float64
}

// layoutConnected runs the ranked pipeline over the connected subgraph
// and writes top-left positions into out. Returns the resulting bounding
// box; the zero box (origin) when there are no connected nodes.
func layoutConnected(out []graph.Node, idx []int, edges []graph.Edge, sizes map[string]graph.Size, cfg layout.Config) bounds {
	if len(idx) == 0 {
		return bounds{}
	}

	d := dag.New()
	for _, i := range idx {
		// IDs were deduplicated upstream; AddNode cannot fail here.
		_ = d.AddNode(dag.Node{ID: out[i].ID})
	}
	for _, e := range edges {
		_ = d.AddEdge(dag.Edge{From: e.Source, To: e.Target})
	}

	dag.BreakCycles(d)
	dag.AssignRows(d)
	orders := dag.OrderRows(d)

	centers := assignCoordinates(d, orders, sizes, cfg)

	box := bounds{minX: 1e18, minY: 1e18, maxX: -1e18, maxY: -1e18}
	for _, i := range idx {
		id := out[i].ID
		c := centers[id]
		s := sizes[id]
		// The ranked solver works in centers; positions are top-left.
		out[i].Position = graph.Position{X: c.X - s.Width/2, Y: c.Y - s.Height/2}

		if out[i].Position.X < box.minX {
			box.minX = out[i].Position.X
		}
		if out[i].Position.Y < box.minY {
			box.minY = out[i].Position.Y
		}
		if r := out[i].Position.X + s.Width; r > box.maxX {
			box.maxX = r
		}
		if b := out[i].Position.Y + s.Height; b > box.maxY {
			box.maxY = b
		}
	}
	return box
}

// assignCoordinates turns row orderings into center coordinates.
// Rows stack downward with RankSep between them; nodes within a row are
// packed left to right with NodeSep and the row is centered on x=0.
// Direction "LR" transposes the result so ranks grow rightward.
func assignCoordinates(d *dag.DAG, orders map[int][]string, sizes map[string]graph.Size, cfg layout.Config) map[string]graph.Position {
	centers := make(map[string]graph.Position, d.NodeCount())

	y := 0.0
	for row := 0; row <= d.MaxRow(); row++ {
		ids := orders[row]
		if len(ids) == 0 {
			continue
		}

		rowHeight, rowWidth := 0.0, 0.0
		for _, id := range ids {
			s := sizes[id]
			if s.Height > rowHeight {
				rowHeight = s.Height
			}
			rowWidth += s.Width
		}
		rowWidth += float64(len(ids)-1) * cfg.NodeSep

		x := -rowWidth / 2
		for _, id := range ids {
			s := sizes[id]
			centers[id] = graph.Position{X: x + s.Width/2, Y: y + rowHeight/2}
			x += s.Width + cfg.NodeSep
		}
		y += rowHeight + cfg.RankSep
	}

	if cfg.Direction == "LR" {
		for id, c := range centers {
			centers[id] = graph.Position{X: c.Y, Y: c.X}
		}
	}
	return centers
}

// layoutOrphans packs edge-less nodes into fixed sub-grids below the
// connected bounding box. Sub-grids hold cfg.OrphanClusterSize nodes in
// a near-square arrangement (2x2 at the default size) and are themselves
// arranged up to cfg.OrphanClustersRow per row.
func layoutOrphans(out []graph.Node, idx []int, box bounds, hasConnected bool, cfg layout.Config) {
	if len(idx) == 0 {
		return
	}

	startX, startY := 0.0, 0.0
	if hasConnected {
		startX = box.minX
		startY = box.maxY + cfg.OrphanOffsetY
	}

	cols := gridCols(cfg.OrphanClusterSize)
	for k, i := range idx {
		cluster := k / cfg.OrphanClusterSize
		within := k % cfg.OrphanClusterSize

		clusterCol := cluster % cfg.OrphanClustersRow
		clusterRow := cluster / cfg.OrphanClustersRow

		col := within % cols
		row := within / cols

		out[i].Position = graph.Position{
			X: startX + float64(clusterCol)*cfg.OrphanClusterGap + float64(col)*cfg.OrphanNodeGap,
			Y: startY + float64(clusterRow)*cfg.OrphanClusterGap + float64(row)*cfg.OrphanNodeGap,
		}
	}
}

// gridCols returns the column count for a near-square sub-grid.
func gridCols(clusterSize int) int {
	cols := 1
	for cols*cols < clusterSize {
		cols++
	}
	return cols
}
