// Package filter implements declarative narrowing and highlighting of
// graph views. Filtering decides what is visible; highlighting is a
// display hint over the visible set and never changes membership.
package filter

import (
	"strings"

	"github.com/codemapio/codemap/pkg/graph"
)

// State is a declarative description of a filtered view. The zero value
// filters nothing: empty sets mean "all allowed", empty strings mean
// "no constraint". A State is created once per viewing session and
// mutated by its owner; Apply only reads it.
type State struct {
	// NodeTypes restricts visible nodes to these types. Empty allows all.
	NodeTypes []graph.NodeType

	// EdgeTypes restricts visible edges to these types. Empty allows all.
	EdgeTypes []graph.EdgeType

	// Clusters restricts visible nodes to these clusters. Empty allows all.
	Clusters []graph.ClusterType

	// FilePath keeps only nodes whose file path contains this substring
	// (case-insensitive).
	FilePath string

	// SearchQuery highlights visible nodes whose name, qualified name,
	// or file path contains this substring (case-insensitive). It never
	// removes nodes from the view.
	SearchQuery string
}

// Result is a derived view: subsets of the input plus highlight hints.
// The input slices are never mutated; result slices share the input's
// backing elements by value.
type Result struct {
	Nodes       []graph.Node
	Edges       []graph.Edge
	Highlighted map[string]struct{}
}

// Apply narrows nodes and edges to the given state and computes the
// highlighted set over the surviving nodes.
//
// A node passes when its type, cluster, and file path all satisfy the
// state (conditions are ANDed). An edge passes when both endpoints
// passed and its type is allowed. Dangling edges never survive.
func Apply(nodes []graph.Node, edges []graph.Edge, st State) Result {
	nodeTypes := typeSet(st.NodeTypes)
	edgeTypes := typeSet(st.EdgeTypes)
	clusters := typeSet(st.Clusters)
	pathNeedle := strings.ToLower(st.FilePath)

	res := Result{Highlighted: map[string]struct{}{}}
	kept := make(map[string]bool, len(nodes))

	for _, n := range nodes {
		if nodeTypes != nil && !nodeTypes[n.Data.Type] {
			continue
		}
		if clusters != nil && !clusters[n.Data.Cluster] {
			continue
		}
		if pathNeedle != "" && !strings.Contains(strings.ToLower(n.Data.FilePath), pathNeedle) {
			continue
		}
		res.Nodes = append(res.Nodes, n)
		kept[n.ID] = true
	}

	for _, e := range edges {
		if !kept[e.Source] || !kept[e.Target] {
			continue
		}
		if edgeTypes != nil && !edgeTypes[e.Type] {
			continue
		}
		res.Edges = append(res.Edges, e)
	}

	if q := strings.ToLower(strings.TrimSpace(st.SearchQuery)); q != "" {
		for _, n := range res.Nodes {
			if matchesQuery(n, q) {
				res.Highlighted[n.ID] = struct{}{}
			}
		}
	}

	return res
}

// matchesQuery reports whether the lowercased needle appears in any of
// the node's searchable text fields.
func matchesQuery(n graph.Node, needle string) bool {
	for _, hay := range []string{n.Data.Name, n.Data.QualifiedName, n.Data.FilePath} {
		if hay != "" && strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// typeSet converts an allow-list into a lookup map. Nil means "allow
// everything" and is distinct from an empty (allow nothing) map, so an
// unset slice never hides the whole graph.
func typeSet[T comparable](allowed []T) map[T]bool {
	if len(allowed) == 0 {
		return nil
	}
	set := make(map[T]bool, len(allowed))
	for _, v := range allowed {
		set[v] = true
	}
	return set
}
