// Package pipeline composes the layout stages into one reusable flow.
//
// This package implements the classify → filter → layout → render
// pipeline used by the CLI. Centralizing it keeps behavior consistent
// across commands and gives every stage the same caching treatment.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Classify: Assign each node a cluster from its file path
//  2. Filter: Narrow the visible node/edge set and compute highlights
//  3. Layout: Compute positions (hierarchical or force engine)
//  4. Render: Generate output artifacts (DOT, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Engine:  pipeline.EngineHierarchical,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/codemapio/codemap/pkg/cache"
	"github.com/codemapio/codemap/pkg/filter"
	"github.com/codemapio/codemap/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI Commands
// =============================================================================

// Layout engines.
const (
	EngineHierarchical = "hierarchical"
	EngineForce        = "force"
)

// DefaultEngine is the engine used when none is requested.
const DefaultEngine = EngineHierarchical

// DefaultIterations is the synchronous force solve step count, matching
// the natural cooling length of the animated run.
const DefaultIterations = 300

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidEngines is the set of supported layout engines.
var ValidEngines = map[string]bool{
	EngineHierarchical: true,
	EngineForce:        true,
}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
type Options struct {
	// Classify options
	SkipClassify bool `json:"skip_classify,omitempty"` // Keep clusters already present on the input

	// Filter options
	Filter filter.State `json:"filter,omitzero"`

	// Layout options
	Engine     string        `json:"engine,omitempty"`
	Iterations int           `json:"iterations,omitempty"` // Force engine only
	Config     layout.Config `json:"config,omitzero"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// Refresh bypasses the layout cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateEngine checks that an engine name is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return fmt.Errorf("invalid engine: %q (must be one of: hierarchical, force)", engine)
	}
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent - calling it multiple
// times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	o.Config.FillDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return ValidateEngine(o.Engine)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Engine: o.Engine,
		Config: o.Config,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Detailed: o.Detailed,
	}
}
