package graph

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUnmarshalGraph(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantEdges int
		wantErr   bool
		check     func(t *testing.T, g Graph)
	}{
		{
			name:      "Empty",
			input:     `{"nodes": [], "edges": []}`,
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name: "Simple",
			input: `{
				"nodes": [
					{"id": "a", "data": {"type": "function", "name": "a", "file_path": "src/a.ts"}},
					{"id": "b", "data": {"type": "class", "name": "B", "file_path": "src/b.ts"}}
				],
				"edges": [
					{"id": "e1", "source": "a", "target": "b", "type": "calls"}
				]
			}`,
			wantNodes: 2,
			wantEdges: 1,
		},
		{
			name: "NormalizesUnknownTypes",
			input: `{
				"nodes": [{"id": "a", "data": {"type": "quasar", "name": "a", "file_path": "x"}}],
				"edges": [{"id": "e1", "source": "a", "target": "a", "type": "teleports_to"}]
			}`,
			wantNodes: 1,
			wantEdges: 1,
			check: func(t *testing.T, g Graph) {
				if got := g.Nodes[0].Data.Type; got != NodeTypeOther {
					t.Errorf("node type = %q, want %q", got, NodeTypeOther)
				}
				if got := g.Edges[0].Type; got != EdgeTypeOther {
					t.Errorf("edge type = %q, want %q", got, EdgeTypeOther)
				}
			},
		},
		{
			name: "DefaultsWeight",
			input: `{
				"nodes": [{"id": "a", "data": {"name": "a", "file_path": "x"}}],
				"edges": [{"id": "e1", "source": "a", "target": "a", "type": "calls"}]
			}`,
			wantNodes: 1,
			wantEdges: 1,
			check: func(t *testing.T, g Graph) {
				if got := g.Edges[0].Weight; got != 1 {
					t.Errorf("weight = %v, want 1", got)
				}
			},
		},
		{
			name:    "Invalid",
			input:   `{invalid json}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := UnmarshalGraph([]byte(tt.input))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalGraph: %v", err)
			}

			if got := len(g.Nodes); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := len(g.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestWriteGraphRoundTrip(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "a", Data: NodeData{Type: NodeTypeFunction, Name: "a", FilePath: "src/a.ts", Cluster: ClusterBackend}},
			{ID: "b", Data: NodeData{Type: NodeTypeComponent, Name: "B", FilePath: "src/B.tsx", Cluster: ClusterFrontend}},
		},
		Edges: []Edge{
			{ID: "e1", Source: "a", Target: "b", Type: EdgeTypeCalls, Weight: 2},
		},
	}

	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		t.Fatalf("WriteGraph: %v", err)
	}

	got, err := ReadGraph(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}

	if len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Fatalf("round trip lost data: %d nodes, %d edges", len(got.Nodes), len(got.Edges))
	}
	if got.Nodes[1].Data.Cluster != ClusterFrontend {
		t.Errorf("cluster = %q, want %q", got.Nodes[1].Data.Cluster, ClusterFrontend)
	}
	if got.Edges[0].Weight != 2 {
		t.Errorf("weight = %v, want 2", got.Edges[0].Weight)
	}
}

func TestReadGraphFile(t *testing.T) {
	content := `{"nodes": [{"id": "a", "data": {"name": "a", "file_path": "x"}}], "edges": []}`

	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if len(g.Nodes) != 1 {
		t.Errorf("nodes = %d, want 1", len(g.Nodes))
	}
}

func TestReadGraphFileNotFound(t *testing.T) {
	_, err := ReadGraphFile("nonexistent.json")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestValidEdges(t *testing.T) {
	nodes := []Node{{ID: "a"}, {ID: "b"}}
	edges := []Edge{
		{ID: "e1", Source: "a", Target: "b", Type: EdgeTypeCalls},
		{ID: "e2", Source: "a", Target: "ghost", Type: EdgeTypeCalls},
		{ID: "e3", Source: "ghost", Target: "b", Type: EdgeTypeCalls},
	}

	valid := ValidEdges(nodes, edges)
	if len(valid) != 1 {
		t.Fatalf("valid edges = %d, want 1", len(valid))
	}
	if valid[0].ID != "e1" {
		t.Errorf("kept edge = %s, want e1", valid[0].ID)
	}
}

func TestCloneNodesIndependence(t *testing.T) {
	measured := &Size{Width: 100, Height: 50}
	nodes := []Node{{ID: "a", Measured: measured}}

	clone := CloneNodes(nodes)
	clone[0].Position = Position{X: 42, Y: 42}
	clone[0].Measured.Width = 999

	if nodes[0].Position.X != 0 {
		t.Error("clone mutated original position")
	}
	if nodes[0].Measured.Width != 100 {
		t.Error("clone shares measured size with original")
	}
}

func TestClusterAnchor(t *testing.T) {
	tests := []struct {
		cluster ClusterType
		want    Position
	}{
		{ClusterFrontend, Position{X: -200, Y: 0}},
		{ClusterBackend, Position{X: 200, Y: 0}},
		{ClusterShared, Position{X: 0, Y: -150}},
		{ClusterUnknown, Position{X: 0, Y: 150}},
		{ClusterType("martian"), Position{X: 0, Y: 150}}, // falls back to unknown
	}

	for _, tt := range tests {
		t.Run(string(tt.cluster), func(t *testing.T) {
			if got := tt.cluster.Anchor(); got != tt.want {
				t.Errorf("Anchor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMarshalGraphIsValidJSON(t *testing.T) {
	g := Graph{Nodes: []Node{{ID: "a"}}, Edges: nil}
	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	if !json.Valid(data) {
		t.Error("output is not valid JSON")
	}
}
