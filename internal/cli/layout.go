package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codemapio/codemap/pkg/io"
	"github.com/codemapio/codemap/pkg/layout"
	"github.com/codemapio/codemap/pkg/pipeline"
)

// layoutCommand creates the layout command for running the full pipeline.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		noCache    bool
		configPath string
		formatsStr string
		ff         filterFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a visual layout for a dependency graph",
		Long: `Compute a visual layout for a code dependency graph.

The layout command reads a graph.json file, classifies nodes into
architectural clusters, applies any view filters, positions the nodes
with the selected engine, and writes one output file per format.

Engines:
  hierarchical  layered top-down/left-right layout (default)
  force         force-directed simulation

Results are cached locally; repeating a run with identical inputs
returns the cached positions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			opts.Filter = ff.state()
			if configPath != "" {
				cfg, err := layout.LoadFile(configPath)
				if err != nil {
					return err
				}
				opts.Config = cfg
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: <input>.layout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when a cached layout exists")

	// Layout flags
	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", pipeline.DefaultEngine, "layout engine: hierarchical (default), force")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", pipeline.DefaultIterations, "simulation ticks for the force engine")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), dot, svg (comma-separated)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include file paths in rendered labels")
	cmd.Flags().BoolVar(&opts.SkipClassify, "skip-classify", false, "keep cluster assignments from the input file")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with layout tunables")
	ff.register(cmd)

	return cmd
}

// runLayout executes the pipeline and writes one file per requested format.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	g, err := io.Import(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Engine))
	spin.Start()

	res, err := runner.Execute(ctx, g, opts)
	if err != nil {
		spin.StopWithError("Layout failed")
		return err
	}
	spin.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := outputBase(output, input)
	printSuccess("Layout complete")
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(res.Stats.FilteredNodes, res.Stats.FilteredEdges, res.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Watch the simulation settle", "codemap watch "+input)

	return nil
}

// outputBase derives the base output path. A provided output keeps its
// value minus any known format extension; otherwise the input name is
// reused with a .layout suffix.
func outputBase(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout"
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
