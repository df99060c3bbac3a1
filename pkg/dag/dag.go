// Package dag implements the ranked (layered) graph structure backing
// the hierarchical layout engine: row assignment, cycle breaking, edge
// crossing counts, and a deterministic within-row ordering pass.
//
// The structure is deliberately small. Nodes carry only an ID and a row;
// everything visual (sizes, labels, clusters) stays in the caller's
// domain model and is joined back by ID after ordering.
//
// All operations are deterministic: node iteration follows insertion
// order, and every tie in the ordering heuristics breaks on node ID.
// Identical input produces bit-identical output, which the layout
// engine's stability contract depends on.
package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by AddNode when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by AddNode when a node with the
	// same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownEndpoint is returned by AddEdge when either endpoint
	// does not exist in the graph.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")
)

// Node is a vertex with an assigned row (layer). Row 0 is the top;
// rows increase downward.
type Node struct {
	ID  string
	Row int
}

// Edge is a directed connection between two nodes.
type Edge struct {
	From string
	To   string
}

// DAG is a directed graph organized into horizontal rows for layered
// layout. It is not safe for concurrent use.
type DAG struct {
	nodes    map[string]*Node
	order    []string // insertion order, for deterministic iteration
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID for an empty ID and ErrDuplicateNodeID if the
// ID is already present.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := n
	d.nodes[node.ID] = &node
	d.order = append(d.order, node.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownEndpoint if either node is missing. Parallel edges
// between the same pair are allowed; the ordering pass treats them as
// additional weight.
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownEndpoint
	}
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e.To)
	d.incoming[e.To] = append(d.incoming[e.To], e.From)
	return nil
}

// RemoveEdge removes every edge from→to. No error if absent.
func (d *DAG) RemoveEdge(from, to string) {
	d.edges = slices.DeleteFunc(d.edges, func(e Edge) bool { return e.From == from && e.To == to })
	d.outgoing[from] = slices.DeleteFunc(d.outgoing[from], func(s string) bool { return s == to })
	d.incoming[to] = slices.DeleteFunc(d.incoming[to], func(s string) bool { return s == from })
}

// Node returns the node with the given ID, or nil and false.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order. The slice contains
// pointers to the live node structs; row mutations affect the graph.
func (d *DAG) Nodes() []*Node {
	nodes := make([]*Node, 0, len(d.order))
	for _, id := range d.order {
		nodes = append(nodes, d.nodes[id])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the IDs this node has edges to. Read-only view.
func (d *DAG) Children(id string) []string { return d.outgoing[id] }

// Parents returns the IDs that have edges to this node. Read-only view.
func (d *DAG) Parents(id string) []string { return d.incoming[id] }

// InDegree returns the number of incoming edges, 0 for unknown nodes.
func (d *DAG) InDegree(id string) int { return len(d.incoming[id]) }

// OutDegree returns the number of outgoing edges, 0 for unknown nodes.
func (d *DAG) OutDegree(id string) int { return len(d.outgoing[id]) }

// Sources returns nodes with no incoming edges, in insertion order.
func (d *DAG) Sources() []*Node {
	var sources []*Node
	for _, id := range d.order {
		if len(d.incoming[id]) == 0 {
			sources = append(sources, d.nodes[id])
		}
	}
	return sources
}

// MaxRow returns the highest row index, or 0 for an empty graph.
func (d *DAG) MaxRow() int {
	maxRow := 0
	for _, n := range d.nodes {
		if n.Row > maxRow {
			maxRow = n.Row
		}
	}
	return maxRow
}

// RowNodes groups node IDs by row, each row sorted by the node's
// position in the provided order map (falling back to ID order for
// nodes not in the map). A nil order yields pure ID order.
func (d *DAG) RowNodes(order map[string]int) map[int][]string {
	rows := make(map[int][]string)
	for _, id := range d.order {
		n := d.nodes[id]
		rows[n.Row] = append(rows[n.Row], n.ID)
	}
	for row := range rows {
		ids := rows[row]
		slices.SortFunc(ids, func(a, b string) int {
			if order != nil {
				pa, okA := order[a]
				pb, okB := order[b]
				if okA && okB && pa != pb {
					return pa - pb
				}
			}
			return compareIDs(a, b)
		})
	}
	return rows
}

// PosMap maps each ID in the slice to its index.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

func compareIDs(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
