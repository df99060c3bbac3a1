package cache

import "errors"

// Sentinel errors for caching operations.
var (
	// ErrCacheMiss is returned when an item is not found in cache by
	// callers that treat a miss as an error rather than a signal.
	ErrCacheMiss = errors.New("cache miss")
)
