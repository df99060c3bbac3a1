package graph

import "math"

// =============================================================================
// Enumerations - Single Source of Truth
// =============================================================================

// NodeType categorizes a graph node by the kind of code entity it represents.
type NodeType string

// Node types.
const (
	NodeTypeFunction  NodeType = "function"
	NodeTypeClass     NodeType = "class"
	NodeTypeMethod    NodeType = "method"
	NodeTypeComponent NodeType = "component"
	NodeTypeEndpoint  NodeType = "endpoint"
	NodeTypeModule    NodeType = "module"
	NodeTypeTest      NodeType = "test"
	NodeTypeOther     NodeType = "other"
)

// AllNodeTypes lists every known node type, in display order.
var AllNodeTypes = []NodeType{
	NodeTypeFunction,
	NodeTypeClass,
	NodeTypeMethod,
	NodeTypeComponent,
	NodeTypeEndpoint,
	NodeTypeModule,
	NodeTypeTest,
	NodeTypeOther,
}

// Normalize maps unknown node type values to NodeTypeOther.
// Upstream data may carry types from a newer schema version; they must
// style and lay out like "other" rather than fail.
func (t NodeType) Normalize() NodeType {
	for _, known := range AllNodeTypes {
		if t == known {
			return t
		}
	}
	return NodeTypeOther
}

// EdgeType categorizes a dependency relationship between two nodes.
type EdgeType string

// Edge types.
const (
	EdgeTypeCalls      EdgeType = "calls"
	EdgeTypeImports    EdgeType = "imports"
	EdgeTypeExports    EdgeType = "exports"
	EdgeTypeExtends    EdgeType = "extends"
	EdgeTypeImplements EdgeType = "implements"
	EdgeTypeRoutesTo   EdgeType = "routes_to"
	EdgeTypeDependsOn  EdgeType = "depends_on"
	EdgeTypeUses       EdgeType = "uses"
	EdgeTypeDefines    EdgeType = "defines"
	EdgeTypeReferences EdgeType = "references"
	EdgeTypeOther      EdgeType = "other"
)

// AllEdgeTypes lists every known edge type, in display order.
var AllEdgeTypes = []EdgeType{
	EdgeTypeCalls,
	EdgeTypeImports,
	EdgeTypeExports,
	EdgeTypeExtends,
	EdgeTypeImplements,
	EdgeTypeRoutesTo,
	EdgeTypeDependsOn,
	EdgeTypeUses,
	EdgeTypeDefines,
	EdgeTypeReferences,
	EdgeTypeOther,
}

// Normalize maps unknown edge type values to EdgeTypeOther.
func (t EdgeType) Normalize() EdgeType {
	for _, known := range AllEdgeTypes {
		if t == known {
			return t
		}
	}
	return EdgeTypeOther
}

// ClusterType is a coarse semantic grouping derived from a node's file path.
type ClusterType string

// Cluster types.
const (
	ClusterFrontend ClusterType = "frontend"
	ClusterBackend  ClusterType = "backend"
	ClusterShared   ClusterType = "shared"
	ClusterUnknown  ClusterType = "unknown"
)

// AllClusterTypes lists every cluster, in display order.
var AllClusterTypes = []ClusterType{
	ClusterFrontend,
	ClusterBackend,
	ClusterShared,
	ClusterUnknown,
}

// clusterAnchors are the fixed positional targets used by the force engine
// to pull each cluster's nodes apart without hard partitioning.
var clusterAnchors = map[ClusterType]Position{
	ClusterFrontend: {X: -200, Y: 0},
	ClusterBackend:  {X: 200, Y: 0},
	ClusterShared:   {X: 0, Y: -150},
	ClusterUnknown:  {X: 0, Y: 150},
}

// Anchor returns the fixed 2D anchor coordinate for the cluster.
// Unknown cluster values fall back to the "unknown" anchor.
func (c ClusterType) Anchor() Position {
	if p, ok := clusterAnchors[c]; ok {
		return p
	}
	return clusterAnchors[ClusterUnknown]
}

// =============================================================================
// Geometry
// =============================================================================

// Position is a 2D point in layout space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is an on-screen rectangle in layout units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether the size is unset.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Diagonal returns the length of the rectangle's diagonal.
// Used by the force engine to derive collision radii.
func (s Size) Diagonal() float64 {
	return math.Hypot(s.Width, s.Height)
}

// =============================================================================
// Node and Edge
// =============================================================================

// NodeData holds the descriptive payload of a node.
type NodeData struct {
	Type          NodeType    `json:"type"`
	Name          string      `json:"name"`
	QualifiedName string      `json:"qualified_name,omitempty"`
	FilePath      string      `json:"file_path"`
	Summary       string      `json:"summary,omitempty"`
	Cluster       ClusterType `json:"cluster,omitempty"`
}

// Node is a visualizable graph entity. Position is owned by whichever
// layout engine ran last; Measured is an optional size supplied by the
// rendering layer and takes precedence over estimation.
type Node struct {
	ID       string   `json:"id"`
	Data     NodeData `json:"data"`
	Position Position `json:"position"`
	Measured *Size    `json:"measured,omitempty"`
}

// DisplayName returns the qualified name if set, otherwise the short name.
func (n *Node) DisplayName() string {
	if n.Data.QualifiedName != "" {
		return n.Data.QualifiedName
	}
	return n.Data.Name
}

// Edge is a typed, directed dependency between two nodes.
// Weight defaults to 1 when unset.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type"`
	Weight float64  `json:"weight,omitempty"`
}

// EffectiveWeight returns the edge weight, defaulting to 1 for
// zero or negative values.
func (e Edge) EffectiveWeight() float64 {
	if e.Weight <= 0 {
		return 1
	}
	return e.Weight
}

// =============================================================================
// Collection Helpers
// =============================================================================

// NodeIndex builds an ID -> index lookup for a node slice.
func NodeIndex(nodes []Node) map[string]int {
	m := make(map[string]int, len(nodes))
	for i, n := range nodes {
		m[n.ID] = i
	}
	return m
}

// ValidEdges returns the subset of edges whose endpoints both exist in
// nodes. Dangling edges are silently dropped: upstream data routinely
// references symbols that were filtered out or not yet extracted, and
// layout must tolerate that rather than fail.
func ValidEdges(nodes []Node, edges []Edge) []Edge {
	idx := NodeIndex(nodes)
	valid := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if _, ok := idx[e.Source]; !ok {
			continue
		}
		if _, ok := idx[e.Target]; !ok {
			continue
		}
		valid = append(valid, e)
	}
	return valid
}

// CloneNodes returns a deep-enough copy of nodes for a layout run.
// Engines mutate positions on the copy, never on caller-supplied slices.
func CloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	for i := range out {
		if out[i].Measured != nil {
			m := *out[i].Measured
			out[i].Measured = &m
		}
	}
	return out
}
