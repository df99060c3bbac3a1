package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/codemapio/codemap/pkg/cluster"
	"github.com/codemapio/codemap/pkg/graph"
	"github.com/codemapio/codemap/pkg/io"
	"github.com/codemapio/codemap/pkg/layout"
	"github.com/codemapio/codemap/pkg/layout/force"
)

// watchCommand creates the watch command for observing the force
// simulation live.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		maxTicks   int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "watch [graph.json]",
		Short: "Watch the force simulation settle in the terminal",
		Long: `Run the force-directed simulation and watch node positions update
live in the terminal. The view refreshes on every simulation tick until
the layout cools off, the tick budget runs out, or q is pressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), args[0], maxTicks, configPath)
		},
	}

	cmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "stop after this many ticks (0 = run until cooled)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with layout tunables")

	return cmd
}

// runWatch starts an animated simulation and feeds its ticks into a
// bubbletea view until the run ends or the user quits.
func (c *CLI) runWatch(ctx context.Context, input string, maxTicks int, configPath string) error {
	g, err := io.Import(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	cfg := layout.Default()
	if configPath != "" {
		if cfg, err = layout.LoadFile(configPath); err != nil {
			return err
		}
	}

	nodes := graph.CloneNodes(g.Nodes)
	cluster.Assign(nodes)

	p := tea.NewProgram(newWatchModel(nodes), tea.WithContext(ctx))

	// Tick callbacks run on the simulation goroutine and the slice is
	// reused between ticks, so positions are copied before sending.
	sim := force.Animate(nodes, g.Edges, cfg, force.AnimateOptions{
		MaxTicks: maxTicks,
		OnTick: func(ns []graph.Node, tick int) {
			p.Send(simTickMsg{nodes: graph.CloneNodes(ns), tick: tick})
		},
		OnEnd: func(ns []graph.Node) {
			p.Send(simDoneMsg{nodes: graph.CloneNodes(ns)})
		},
	})
	defer sim.Stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run simulation view: %w", err)
	}
	return nil
}

// =============================================================================
// WatchModel - Live simulation view
// =============================================================================

// maxWatchRows bounds the position table height.
const maxWatchRows = 12

// simTickMsg carries the positions after one simulation step.
type simTickMsg struct {
	nodes []graph.Node
	tick  int
}

// simDoneMsg carries the final positions when the simulation ends.
type simDoneMsg struct {
	nodes []graph.Node
}

// watchModel is the bubbletea model for the live simulation view.
type watchModel struct {
	nodes []graph.Node
	tick  int
	done  bool
}

// newWatchModel creates a watch model seeded with the initial positions.
func newWatchModel(nodes []graph.Node) watchModel {
	return watchModel{nodes: graph.CloneNodes(nodes)}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case simTickMsg:
		m.nodes = msg.nodes
		m.tick = msg.tick
	case simDoneMsg:
		m.nodes = msg.nodes
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Force Simulation"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n\n")

	shown := m.nodes
	if len(shown) > maxWatchRows {
		shown = shown[:maxWatchRows]
	}

	rows := [][]string{}
	for _, n := range shown {
		rows = append(rows, []string{
			n.Data.Name,
			string(n.Data.Cluster),
			fmt.Sprintf("%8.1f", n.Position.X),
			fmt.Sprintf("%8.1f", n.Position.Y),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Cluster", "X", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(StyleSuccess.Render(iconSuccess + " settled"))
		b.WriteString(StyleDim.Render(fmt.Sprintf(" after %d ticks", m.tick)))
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("settling... tick %d", m.tick)))
	}
	if len(m.nodes) > maxWatchRows {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  [showing %d of %d nodes]", maxWatchRows, len(m.nodes))))
	}
	b.WriteString("\n")

	return b.String()
}
