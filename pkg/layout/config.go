// Package layout holds the shared configuration for the layout engines:
// force simulation tunables, hierarchical spacing, and orphan grid
// packing constants. All knobs are plain numbers with documented
// defaults; changing them never requires code changes.
//
// Values are not range-validated. Out-of-range settings (say, a positive
// ChargeStrength) produce visually poor but well-defined layouts - that
// is a caller contract, not an engine failure.
package layout

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/codemapio/codemap/pkg/errors"
)

// Default force simulation tunables.
const (
	DefaultClusterStrength = 0.4
	DefaultLinkDistance    = 150.0
	DefaultChargeStrength  = -400.0
	DefaultCenterStrength  = 0.01
	DefaultCollisionRadius = 80.0
)

// Default hierarchical layout spacing.
const (
	DefaultDirection = "TB"
	DefaultRankSep   = 120.0
	DefaultNodeSep   = 60.0
)

// Default orphan grid packing. These started life as tuning values with
// no deeper rationale; they are configuration, not contract.
const (
	DefaultOrphanClusterSize = 4     // nodes per sub-grid (2x2)
	DefaultOrphanClustersRow = 4     // sub-grids per row
	DefaultOrphanNodeGap     = 180.0 // spacing between nodes inside a sub-grid
	DefaultOrphanClusterGap  = 420.0 // spacing between sub-grid origins
	DefaultOrphanOffsetY     = 100.0 // gap below the connected bounding box
)

// Config carries every layout tunable. The zero value is not useful -
// use Default, or LoadFile which fills unset fields with defaults.
type Config struct {
	// Force simulation
	ClusterStrength float64 `toml:"cluster_strength"`
	LinkDistance    float64 `toml:"link_distance"`
	ChargeStrength  float64 `toml:"charge_strength"`
	CenterStrength  float64 `toml:"center_strength"`
	CollisionRadius float64 `toml:"collision_radius"` // fallback when node size is unknown

	// Hierarchical layout
	Direction string  `toml:"direction"`
	RankSep   float64 `toml:"rank_sep"`
	NodeSep   float64 `toml:"node_sep"`

	// Orphan grid
	OrphanClusterSize int     `toml:"orphan_cluster_size"`
	OrphanClustersRow int     `toml:"orphan_clusters_per_row"`
	OrphanNodeGap     float64 `toml:"orphan_node_gap"`
	OrphanClusterGap  float64 `toml:"orphan_cluster_gap"`
	OrphanOffsetY     float64 `toml:"orphan_offset_y"`
}

// Default returns a Config with every field set to its documented default.
func Default() Config {
	return Config{
		ClusterStrength: DefaultClusterStrength,
		LinkDistance:    DefaultLinkDistance,
		ChargeStrength:  DefaultChargeStrength,
		CenterStrength:  DefaultCenterStrength,
		CollisionRadius: DefaultCollisionRadius,

		Direction: DefaultDirection,
		RankSep:   DefaultRankSep,
		NodeSep:   DefaultNodeSep,

		OrphanClusterSize: DefaultOrphanClusterSize,
		OrphanClustersRow: DefaultOrphanClustersRow,
		OrphanNodeGap:     DefaultOrphanNodeGap,
		OrphanClusterGap:  DefaultOrphanClusterGap,
		OrphanOffsetY:     DefaultOrphanOffsetY,
	}
}

// FillDefaults replaces zero-valued fields with their defaults.
// ChargeStrength is expected to be negative, so zero means "unset" there
// too. Callers that genuinely want a zero strength can use a tiny
// epsilon; in practice nobody does.
func (c *Config) FillDefaults() {
	d := Default()
	if c.ClusterStrength == 0 {
		c.ClusterStrength = d.ClusterStrength
	}
	if c.LinkDistance == 0 {
		c.LinkDistance = d.LinkDistance
	}
	if c.ChargeStrength == 0 {
		c.ChargeStrength = d.ChargeStrength
	}
	if c.CenterStrength == 0 {
		c.CenterStrength = d.CenterStrength
	}
	if c.CollisionRadius == 0 {
		c.CollisionRadius = d.CollisionRadius
	}
	if c.Direction == "" {
		c.Direction = d.Direction
	}
	if c.RankSep == 0 {
		c.RankSep = d.RankSep
	}
	if c.NodeSep == 0 {
		c.NodeSep = d.NodeSep
	}
	if c.OrphanClusterSize == 0 {
		c.OrphanClusterSize = d.OrphanClusterSize
	}
	if c.OrphanClustersRow == 0 {
		c.OrphanClustersRow = d.OrphanClustersRow
	}
	if c.OrphanNodeGap == 0 {
		c.OrphanNodeGap = d.OrphanNodeGap
	}
	if c.OrphanClusterGap == 0 {
		c.OrphanClusterGap = d.OrphanClusterGap
	}
	if c.OrphanOffsetY == 0 {
		c.OrphanOffsetY = d.OrphanOffsetY
	}
}

// LoadFile reads a TOML config file and returns the resulting Config
// with unset fields filled from defaults. The direction is validated
// and normalized to upper case, so "lr" in a file means "LR".
//
// Example file:
//
//	link_distance = 200
//	charge_strength = -600
//	rank_sep = 150
func LoadFile(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.FillDefaults()
	if err := errors.ValidateDirection(c.Direction); err != nil {
		return Config{}, err
	}
	c.Direction = strings.ToUpper(c.Direction)
	return c, nil
}
