package force

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/codemapio/codemap/pkg/graph"
	"github.com/codemapio/codemap/pkg/layout"
	"github.com/codemapio/codemap/pkg/observability"
)

// DefaultFrameInterval is the tick pacing for animated runs, roughly
// 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// AnimateOptions configures an animated simulation run. The zero value
// is usable: no callbacks, default frame pacing, no logging.
type AnimateOptions struct {
	// OnTick is invoked after every simulation step with the current
	// positions and the tick number (starting at 1). The slice is reused
	// between ticks; callers that retain it must copy.
	OnTick func(nodes []graph.Node, tick int)

	// OnEnd is invoked once with the final positions, either when the
	// simulation cools off on its own or when Stop is called.
	OnEnd func(nodes []graph.Node)

	// Interval is the delay between ticks. Defaults to
	// DefaultFrameInterval when zero or negative.
	Interval time.Duration

	// MaxTicks bounds the run length. Zero means run until the
	// simulation cools below its alpha floor (~300 ticks).
	MaxTicks int

	// Logger receives per-run debug output. Nil disables logging.
	Logger *log.Logger
}

// Simulation is a handle to a running animated layout. All callbacks
// fire on the simulation goroutine; the handle itself is safe for
// concurrent use.
type Simulation struct {
	// ID correlates log lines from this run.
	ID string

	cancel context.CancelFunc
	done   chan struct{}
	stop   sync.Once
}

// Stop cancels the run and blocks until the simulation goroutine has
// exited, including its final OnEnd callback. Safe to call multiple
// times and after natural completion.
func (s *Simulation) Stop() {
	s.stop.Do(s.cancel)
	<-s.done
}

// Wait blocks until the simulation finishes, naturally or via Stop.
func (s *Simulation) Wait() {
	<-s.done
}

// Animate starts the simulation on its own goroutine, stepping once per
// frame interval and reporting positions through opts.OnTick. The input
// slices are copied up front and never mutated.
//
// Exactly one run should be live per consumer: callers re-animating a
// changed graph must Stop the previous handle first, otherwise two runs
// race to report positions for the same view.
func Animate(nodes []graph.Node, edges []graph.Edge, cfg layout.Config, opts AnimateOptions) *Simulation {
	st := newState(nodes, edges, cfg)

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	sim := &Simulation{
		ID:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	logger := opts.Logger
	if logger != nil {
		logger = logger.With("run", sim.ID)
		logger.Debug("simulation started", "nodes", len(st.nodes), "links", len(st.links))
	}

	go func() {
		defer close(sim.done)
		defer cancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		started := time.Now()
		observability.Simulation().OnSimulationStart(ctx, sim.ID, len(st.nodes))

		tick := 0
		for !st.done() {
			select {
			case <-ctx.Done():
				sim.finish(ctx, st, opts, logger, tick, started, "stopped")
				return
			case <-ticker.C:
			}

			tick++
			st.tick()
			st.writeBack()
			observability.Simulation().OnSimulationTick(ctx, sim.ID, tick)
			if opts.OnTick != nil {
				opts.OnTick(st.nodes, tick)
			}
			if opts.MaxTicks > 0 && tick >= opts.MaxTicks {
				break
			}
		}
		sim.finish(ctx, st, opts, logger, tick, started, "cooled")
	}()

	return sim
}

func (s *Simulation) finish(ctx context.Context, st *state, opts AnimateOptions, logger *log.Logger, tick int, started time.Time, reason string) {
	st.writeBack()
	if opts.OnEnd != nil {
		opts.OnEnd(st.nodes)
	}
	observability.Simulation().OnSimulationEnd(ctx, s.ID, tick, time.Since(started))
	if logger != nil {
		logger.Debug("simulation finished", "reason", reason, "ticks", tick)
	}
}
