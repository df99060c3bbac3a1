// Package cache provides content-addressed caching for computed layouts
// and rendered artifacts.
//
// Layout computation is deterministic: the same graph bytes and config
// always produce the same positions. That makes cache keys trivial to
// build from content hashes, and makes cached entries safe to reuse
// indefinitely (TTLs exist for hygiene, not correctness).
package cache

import (
	"context"
	"time"

	"github.com/codemapio/codemap/pkg/layout"
)

// Default TTLs per entry kind. Layouts are deterministic so these are
// housekeeping bounds, not freshness requirements.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts captures everything besides the graph itself that
// affects computed positions.
type LayoutKeyOpts struct {
	Engine string // "hierarchical" or "force"
	Config layout.Config
}

// ArtifactKeyOpts captures everything besides the layout that affects
// a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string // "dot" or "svg"
	Detailed bool
}

// Keyer builds cache keys for the two cacheable stages.
type Keyer interface {
	// LayoutKey generates a key for a computed layout, from the hash of
	// the input graph bytes plus the layout options.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, from the
	// hash of the layout bytes plus the render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes options into prefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts.Engine, opts.Config)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts.Format, opts.Detailed)
}
