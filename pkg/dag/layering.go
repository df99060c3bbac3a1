package dag

// AssignRows assigns every node to a row using longest-path layering
// over a topological traversal (Kahn's algorithm). Source nodes land in
// row 0; every other node lands one past the deepest of its parents, so
// an edge's target row is always strictly below its source row.
//
// AssignRows assumes the graph is acyclic - run BreakCycles first.
// Nodes trapped in a residual cycle would never reach zero in-degree and
// would stay at their default row 0.
//
// Runs in O(V + E).
func AssignRows(d *DAG) {
	nodes := d.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := d.InDegree(n.ID)
		inDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range d.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	for _, n := range nodes {
		n.Row = rows[n.ID]
	}
}
