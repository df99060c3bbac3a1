package dag

// BreakCycles removes back edges until the graph is acyclic and returns
// how many were removed. Code-dependency graphs are routinely cyclic
// (mutual imports, recursive calls), and the layering pass requires a
// DAG, so this runs first.
//
// Detection is depth-first with white/gray/black coloring, starting from
// source nodes so that the "natural" roots keep their forward edges and
// the removed edges are the ones pointing back up the traversal.
// Traversal order follows node insertion order, keeping the choice of
// removed edges deterministic.
func BreakCycles(d *DAG) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, d.NodeCount())
	var backEdges [][2]string

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, child := range d.Children(node) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				backEdges = append(backEdges, [2]string{node, child})
			}
		}
		color[node] = black
	}

	for _, n := range d.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	for _, n := range d.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, e := range backEdges {
		d.RemoveEdge(e[0], e[1])
	}
	return len(backEdges)
}
