package dag

import "slices"

// CountCrossings returns the total number of edge crossings for the
// given row orderings, summed over consecutive row pairs. Rows absent
// from the map are treated as empty.
func CountCrossings(d *DAG, orders map[int][]string) int {
	maxRow := 0
	for row := range orders {
		if row > maxRow {
			maxRow = row
		}
	}
	crossings := 0
	for r := 0; r < maxRow; r++ {
		crossings += CountLayerCrossings(d, orders[r], orders[r+1])
	}
	return crossings
}

// CountLayerCrossings counts edge crossings between two adjacent rows
// using a Fenwick tree for O(E log V) inversion counting. Two edges
// (u1,v1) and (u2,v2) cross iff pos(u1) < pos(u2) and pos(v1) > pos(v2),
// which is an inversion in the sequence of target positions when edges
// are sorted by source position.
//
// Edges to nodes outside the lower row are skipped, so long edges that
// span multiple rows simply don't contribute here.
func CountLayerCrossings(d *DAG, upper, lower []string) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := PosMap(lower)

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for i, nodeID := range upper {
		for _, child := range d.Children(nodeID) {
			if pos, ok := lowerPos[child]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		// Count edges seen so far with target <= e.lower; the rest cross.
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}
