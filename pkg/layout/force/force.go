// Package force implements the physics-based layout: link attraction,
// charge repulsion, centering, size-aware collision avoidance, and
// per-cluster positional bias.
//
// Two entry points cover the two consumption modes. [Solve] runs a fixed
// number of ticks synchronously and returns final positions. [Animate]
// steps the same simulation cooperatively on a ticker, invoking a
// callback per tick, and returns a cancellable [Simulation] handle.
//
// The integration scheme follows the d3-force model: each force adds to
// a per-node velocity, scaled by a cooling factor (alpha) that decays
// every tick; velocities are damped and applied to positions. Collision
// resolution is positional and not alpha-scaled, so boxes stay separated
// even as the simulation cools.
package force

import (
	"math"

	"github.com/codemapio/codemap/pkg/graph"
	"github.com/codemapio/codemap/pkg/layout"
	"github.com/codemapio/codemap/pkg/layout/size"
)

// Cooling and damping constants, per the d3-force defaults.
const (
	alphaStart    = 1.0
	alphaMin      = 0.001
	alphaDecay    = 0.0228 // reaches alphaMin in ~300 ticks
	velocityDecay = 0.6    // velocity retained per tick

	linkStrength     = 0.5
	collideBuffer    = 10 // added to every collision radius
	collidePasses    = 2  // resolution iterations per tick
	initialRadius    = 10 // phyllotaxis spiral scale for unplaced nodes
	minDistanceSq    = 1  // clamp for charge singularity
	phyllotaxisAngle = math.Pi * (3 - 2.2360679774997896) // golden angle, 2-sqrt(5) form
)

// body is the simulation state for one node.
type body struct {
	x, y   float64
	vx, vy float64
	radius float64
	anchor graph.Position
}

// link is a resolved edge between two body indices.
type link struct {
	source, target int
	weight         float64
}

// state is a running simulation over copied nodes.
type state struct {
	nodes  []graph.Node
	bodies []body
	links  []link
	cfg    layout.Config
	alpha  float64
}

// newState copies the input and prepares simulation bodies.
// Dangling edges are dropped; nodes at the exact origin receive
// deterministic phyllotaxis starting positions so the charge force has
// something to push against.
func newState(nodes []graph.Node, edges []graph.Edge, cfg layout.Config) *state {
	cfg.FillDefaults()

	out := graph.CloneNodes(nodes)
	idx := graph.NodeIndex(out)
	sizes := size.EstimateAll(out)

	bodies := make([]body, len(out))
	for i, n := range out {
		b := body{
			x:      n.Position.X,
			y:      n.Position.Y,
			anchor: n.Data.Cluster.Anchor(),
			radius: cfg.CollisionRadius,
		}
		if s, ok := sizes[n.ID]; ok && !s.IsZero() {
			b.radius = s.Diagonal()/2 + collideBuffer
		}
		if b.x == 0 && b.y == 0 {
			r := initialRadius * math.Sqrt(0.5+float64(i))
			a := float64(i) * phyllotaxisAngle
			b.x = r * math.Cos(a)
			b.y = r * math.Sin(a)
		}
		bodies[i] = b
	}

	var links []link
	for _, e := range graph.ValidEdges(out, edges) {
		links = append(links, link{
			source: idx[e.Source],
			target: idx[e.Target],
			weight: e.EffectiveWeight(),
		})
	}

	return &state{nodes: out, bodies: bodies, links: links, cfg: cfg, alpha: alphaStart}
}

// tick advances the simulation one step: apply forces in order, decay
// alpha, damp velocities, integrate.
func (s *state) tick() {
	s.applyLinks()
	s.applyCharge()
	s.applyCenter()
	s.applyCollide()
	s.applyCluster()

	s.alpha += (alphaMin/10 - s.alpha) * alphaDecay

	for i := range s.bodies {
		b := &s.bodies[i]
		b.vx *= velocityDecay
		b.vy *= velocityDecay
		b.x += b.vx
		b.y += b.vy
	}
}

// done reports whether the simulation has cooled off.
func (s *state) done() bool { return s.alpha < alphaMin }

// applyLinks pulls edge endpoints toward the configured separation.
func (s *state) applyLinks() {
	for _, l := range s.links {
		src, dst := &s.bodies[l.source], &s.bodies[l.target]

		dx := dst.x + dst.vx - src.x - src.vx
		dy := dst.y + dst.vy - src.y - src.vy
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dist = 1
		}

		f := (dist - s.cfg.LinkDistance) / dist * s.alpha * linkStrength * l.weight
		fx, fy := dx*f, dy*f
		dst.vx -= fx / 2
		dst.vy -= fy / 2
		src.vx += fx / 2
		src.vy += fy / 2
	}
}

// applyCharge applies all-pairs repulsion (attraction for positive
// strength, which is permitted but visually useless).
func (s *state) applyCharge() {
	for i := 0; i < len(s.bodies); i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			bi, bj := &s.bodies[i], &s.bodies[j]

			dx := bj.x - bi.x
			dy := bj.y - bi.y
			d2 := dx*dx + dy*dy
			if d2 < minDistanceSq {
				d2 = minDistanceSq
			}

			f := s.cfg.ChargeStrength * s.alpha / d2
			bi.vx += dx * f
			bi.vy += dy * f
			bj.vx -= dx * f
			bj.vy -= dy * f
		}
	}
}

// applyCenter pulls every node toward the origin to prevent drift.
func (s *state) applyCenter() {
	for i := range s.bodies {
		b := &s.bodies[i]
		b.vx -= b.x * s.cfg.CenterStrength * s.alpha
		b.vy -= b.y * s.cfg.CenterStrength * s.alpha
	}
}

// applyCollide separates overlapping nodes. Radii derive from estimated
// box diagonals, so large cards claim proportionally more space. The
// correction is positional and runs multiple passes per tick for
// stability; it is deliberately not alpha-scaled.
func (s *state) applyCollide() {
	for pass := 0; pass < collidePasses; pass++ {
		for i := 0; i < len(s.bodies); i++ {
			for j := i + 1; j < len(s.bodies); j++ {
				bi, bj := &s.bodies[i], &s.bodies[j]

				dx := bj.x - bi.x
				dy := bj.y - bi.y
				dist := math.Hypot(dx, dy)
				minDist := bi.radius + bj.radius
				if dist >= minDist {
					continue
				}
				if dist == 0 {
					// Coincident nodes: separate along x, tie-broken by index.
					dx, dist = 1e-6, 1e-6
				}

				overlap := (minDist - dist) / dist / 2
				bi.x -= dx * overlap
				bi.y -= dy * overlap
				bj.x += dx * overlap
				bj.y += dy * overlap
			}
		}
	}
}

// applyCluster pulls each coordinate toward the node's cluster anchor,
// independently on x and y, yielding emergent separation between
// clusters without hard partitioning.
func (s *state) applyCluster() {
	for i := range s.bodies {
		b := &s.bodies[i]
		b.vx += (b.anchor.X - b.x) * s.cfg.ClusterStrength * s.alpha
		b.vy += (b.anchor.Y - b.y) * s.cfg.ClusterStrength * s.alpha
	}
}

// writeBack copies body coordinates into node positions.
func (s *state) writeBack() {
	for i := range s.nodes {
		s.nodes[i].Position = graph.Position{X: s.bodies[i].x, Y: s.bodies[i].y}
	}
}

// Solve runs the simulation synchronously for a fixed number of
// iterations and returns the final node positions. The input is never
// mutated. Callers needing a time bound cap iterations; there is no
// internal timeout.
func Solve(nodes []graph.Node, edges []graph.Edge, cfg layout.Config, iterations int) []graph.Node {
	s := newState(nodes, edges, cfg)
	for i := 0; i < iterations; i++ {
		s.tick()
	}
	s.writeBack()
	return s.nodes
}
