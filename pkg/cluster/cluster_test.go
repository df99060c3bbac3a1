package cluster

import (
	"testing"

	"github.com/codemapio/codemap/pkg/graph"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want graph.ClusterType
	}{
		{"ApiRoute", "src/api/users/route.ts", graph.ClusterBackend},
		{"Component", "src/components/Foo.tsx", graph.ClusterFrontend},
		{"AppApiOverride", "src/app/api/x/route.ts", graph.ClusterBackend},
		{"AppPage", "src/app/dashboard/page.ts", graph.ClusterFrontend},
		{"Lib", "src/lib/utils.ts", graph.ClusterShared},
		{"Readme", "README.md", graph.ClusterUnknown},
		{"Pages", "src/pages/index.ts", graph.ClusterFrontend},
		{"Hooks", "src/hooks/useThing.ts", graph.ClusterFrontend},
		{"UiExtension", "src/widgets/Button.vue", graph.ClusterFrontend},
		{"Stylesheet", "src/styles/main.scss", graph.ClusterFrontend},
		{"Server", "src/server/index.ts", graph.ClusterBackend},
		{"Controllers", "src/controllers/user.ts", graph.ClusterBackend},
		{"Middleware", "src/middleware/auth.ts", graph.ClusterBackend},
		{"Database", "src/database/migrate.ts", graph.ClusterBackend},
		{"Types", "src/types/models.ts", graph.ClusterShared},
		{"Schemas", "src/schemas/user.ts", graph.ClusterShared},
		{"Common", "src/common/format.ts", graph.ClusterShared},
		{"CaseInsensitive", "SRC/API/users.TS", graph.ClusterBackend},
		{"NoLeadingSlash", "components/App.ts", graph.ClusterFrontend},
		{"Empty", "", graph.ClusterUnknown},
		{"BareFile", "main.go", graph.ClusterUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	path := "src/app/api/x/route.ts"
	first := Classify(path)
	for i := 0; i < 100; i++ {
		if got := Classify(path); got != first {
			t.Fatalf("Classify not deterministic: %q then %q", first, got)
		}
	}
}

func TestAssign(t *testing.T) {
	nodes := []graph.Node{
		{ID: "a", Data: graph.NodeData{FilePath: "src/components/App.tsx", Cluster: graph.ClusterBackend}},
		{ID: "b", Data: graph.NodeData{FilePath: "src/services/db.ts"}},
	}

	Assign(nodes)

	if nodes[0].Data.Cluster != graph.ClusterFrontend {
		t.Errorf("node a cluster = %q, want frontend (path wins over preset)", nodes[0].Data.Cluster)
	}
	if nodes[1].Data.Cluster != graph.ClusterBackend {
		t.Errorf("node b cluster = %q, want backend", nodes[1].Data.Cluster)
	}
}
