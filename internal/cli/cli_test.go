package cli

import (
	"io"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/codemapio/codemap/pkg/graph"
	"github.com/codemapio/codemap/pkg/pipeline"
)

func TestCacheDir(t *testing.T) {
	t.Run("XDG_CACHE_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir: %v", err)
		}
		if want := filepath.Join("/tmp/xdg-cache", appName); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})

	t.Run("fallback to home", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "")

		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir: %v", err)
		}
		if filepath.Base(dir) != appName {
			t.Errorf("cacheDir() = %q, want path ending in %q", dir, appName)
		}
	})
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty defaults to json", input: "", want: []string{pipeline.FormatJSON}},
		{name: "single", input: "svg", want: []string{"svg"}},
		{name: "multiple", input: "json,dot,svg", want: []string{"json", "dot", "svg"}},
		{name: "whitespace trimmed", input: " json , dot ", want: []string{"json", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList(""); got != nil {
		t.Errorf("splitList(\"\") = %v, want nil", got)
	}
	if got := splitList("a,,b, "); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("splitList dropped-empties = %v, want [a b]", got)
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{name: "derived from input", output: "", input: "graph.json", want: "graph.layout"},
		{name: "explicit base", output: "out/map", input: "graph.json", want: "out/map"},
		{name: "format extension stripped", output: "map.svg", input: "graph.json", want: "map"},
		{name: "unknown extension kept", output: "map.v2", input: "graph.json", want: "map.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputBase(tt.output, tt.input); got != tt.want {
				t.Errorf("outputBase(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestFilterFlagsState(t *testing.T) {
	ff := filterFlags{
		nodeTypes: "function,component",
		clusters:  "frontend",
		path:      "src/",
		search:    "auth",
	}

	st := ff.state()
	if want := []graph.NodeType{"function", "component"}; !reflect.DeepEqual(st.NodeTypes, want) {
		t.Errorf("NodeTypes = %v, want %v", st.NodeTypes, want)
	}
	if len(st.EdgeTypes) != 0 {
		t.Errorf("EdgeTypes = %v, want empty", st.EdgeTypes)
	}
	if want := []graph.ClusterType{"frontend"}; !reflect.DeepEqual(st.Clusters, want) {
		t.Errorf("Clusters = %v, want %v", st.Clusters, want)
	}
	if st.FilePath != "src/" || st.SearchQuery != "auth" {
		t.Errorf("FilePath/SearchQuery = %q/%q", st.FilePath, st.SearchQuery)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"layout": false, "filter": false, "watch": false, "cache": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}
