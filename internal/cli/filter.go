package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codemapio/codemap/pkg/cluster"
	"github.com/codemapio/codemap/pkg/filter"
	"github.com/codemapio/codemap/pkg/graph"
	"github.com/codemapio/codemap/pkg/io"
)

// filterFlags holds the view-filter flags shared by the layout and filter
// commands.
type filterFlags struct {
	nodeTypes string
	edgeTypes string
	clusters  string
	path      string
	search    string
}

// register adds the filter flags to cmd.
func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.nodeTypes, "node-types", "", "node types to keep (comma-separated, empty keeps all)")
	cmd.Flags().StringVar(&f.edgeTypes, "edge-types", "", "edge types to keep (comma-separated, empty keeps all)")
	cmd.Flags().StringVar(&f.clusters, "clusters", "", "clusters to keep (comma-separated, empty keeps all)")
	cmd.Flags().StringVar(&f.path, "path", "", "keep only nodes whose file path contains this substring")
	cmd.Flags().StringVar(&f.search, "search", "", "highlight nodes matching this query")
}

// state converts the raw flag values into a filter state.
func (f *filterFlags) state() filter.State {
	st := filter.State{FilePath: f.path, SearchQuery: f.search}
	for _, s := range splitList(f.nodeTypes) {
		st.NodeTypes = append(st.NodeTypes, graph.NodeType(s))
	}
	for _, s := range splitList(f.edgeTypes) {
		st.EdgeTypes = append(st.EdgeTypes, graph.EdgeType(s))
	}
	for _, s := range splitList(f.clusters) {
		st.Clusters = append(st.Clusters, graph.ClusterType(s))
	}
	return st
}

// filterCommand creates the filter command for producing a reduced graph.
func (c *CLI) filterCommand() *cobra.Command {
	var (
		output string
		ff     filterFlags
	)

	cmd := &cobra.Command{
		Use:   "filter [graph.json]",
		Short: "Filter a dependency graph without laying it out",
		Long: `Filter a dependency graph down to a smaller view.

Nodes are classified into architectural clusters first so cluster
filters work on plain parser output. The filtered graph is written as
graph JSON and can be fed back into 'codemap layout'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFilter(cmd.Context(), args[0], ff.state(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.filtered.json)")
	ff.register(cmd)

	return cmd
}

// runFilter loads the graph, applies the filter, and writes the result.
func (c *CLI) runFilter(ctx context.Context, input string, st filter.State, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := io.Import(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	nodes := graph.CloneNodes(g.Nodes)
	cluster.Assign(nodes)
	view := filter.Apply(nodes, g.Edges, st)

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".filtered.json"
	}
	if err := io.ExportLayout(io.NewLayout(view.Nodes, view.Edges, view.Highlighted), outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	prog.done(fmt.Sprintf("Kept %d of %d nodes, %d of %d edges",
		len(view.Nodes), len(g.Nodes), len(view.Edges), len(g.Edges)))
	printFile(outputPath)
	printNewline()
	printNextStep("Lay out the view", "codemap layout "+outputPath)

	return nil
}
