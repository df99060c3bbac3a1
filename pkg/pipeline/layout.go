package pipeline

import (
	"fmt"

	"github.com/codemapio/codemap/pkg/graph"
	"github.com/codemapio/codemap/pkg/layout/force"
	"github.com/codemapio/codemap/pkg/layout/hier"
)

// ComputeLayout runs the selected engine over the given view and
// returns positioned nodes. The input is never mutated; both engines
// copy it internally.
func ComputeLayout(nodes []graph.Node, edges []graph.Edge, opts Options) ([]graph.Node, error) {
	opts.SetLayoutDefaults()

	switch opts.Engine {
	case EngineHierarchical:
		return hier.Layout(nodes, edges, opts.Config), nil
	case EngineForce:
		return force.Solve(nodes, edges, opts.Config, opts.Iterations), nil
	default:
		return nil, fmt.Errorf("invalid engine: %q", opts.Engine)
	}
}
