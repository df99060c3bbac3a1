package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/codemapio/codemap/pkg/cache"
	"github.com/codemapio/codemap/pkg/cluster"
	"github.com/codemapio/codemap/pkg/filter"
	"github.com/codemapio/codemap/pkg/graph"
	"github.com/codemapio/codemap/pkg/io"
	"github.com/codemapio/codemap/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the positioned view: filtered nodes with positions,
	// surviving edges, and highlighted ids.
	Layout io.Layout

	// GraphHash is the content hash of the filtered graph that was
	// laid out.
	GraphHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount     int // nodes in the input graph
	EdgeCount     int // edges in the input graph
	FilteredNodes int // nodes surviving the filter
	FilteredEdges int // edges surviving the filter
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// Execute runs the complete classify → filter → layout → render
// pipeline with caching.
func (r *Runner) Execute(ctx context.Context, g graph.Graph, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.NodeCount = len(g.Nodes)
	result.Stats.EdgeCount = len(g.Edges)

	// Stage 1: Classify
	nodes := graph.CloneNodes(g.Nodes)
	if !opts.SkipClassify {
		cluster.Assign(nodes)
	}

	// Stage 2: Filter
	view := filter.Apply(nodes, g.Edges, opts.Filter)
	result.Stats.FilteredNodes = len(view.Nodes)
	result.Stats.FilteredEdges = len(view.Edges)
	observability.Pipeline().OnFilterComplete(ctx, len(view.Nodes), len(nodes))

	r.Logger.Debug("filtered graph",
		"nodes", len(view.Nodes),
		"of", len(nodes),
		"edges", len(view.Edges))

	// Stage 3: Layout
	layoutStart := time.Now()
	positioned, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, view.Nodes, view.Edges, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = io.NewLayout(positioned, view.Edges, view.Highlighted)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit
	result.GraphHash = r.graphHash(view.Nodes, view.Edges)

	r.Logger.Info("computed layout",
		"engine", opts.Engine,
		"nodes", len(positioned),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, result.Layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo computes positions with caching and returns
// cache hit info. Determinism makes cached positions exact, not
// approximate: a hit is byte-identical to a recompute.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, nodes []graph.Node, edges []graph.Edge, opts Options) ([]graph.Node, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(r.graphHash(nodes, edges), opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := io.UnmarshalLayout(data); err == nil {
				return cached.Nodes, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	observability.Pipeline().OnLayoutStart(ctx, opts.Engine, len(nodes))
	start := time.Now()
	positioned, err := ComputeLayout(nodes, edges, opts)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Engine, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := io.MarshalLayout(io.Layout{Nodes: positioned}); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
	}

	return positioned, false, nil // Cache miss
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l io.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := io.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	rendered, err := RenderFromLayout(ctx, l, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// graphHash computes a content hash of a node/edge set for cache keys.
func (r *Runner) graphHash(nodes []graph.Node, edges []graph.Edge) string {
	data, err := graph.MarshalGraph(graph.Graph{Nodes: nodes, Edges: edges})
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
