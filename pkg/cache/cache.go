// Package cache stores rendered artifacts between runs.
//
// Rendering a graph through Graphviz is the only expensive step of a
// search, so its output is cached under a key derived from the DOT source
// and the output format. Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: a shared Redis instance, selected by cache.redis_url
//   - [NullCache]: stores nothing, used by --no-cache
package cache

import (
	"context"
	"time"
)

// ArtifactTTL is how long rendered artifacts stay cached.
const ArtifactTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// ArtifactKey returns the cache key of a rendered artifact.
func ArtifactKey(dotHash, format string) string {
	return hashKey("artifact", dotHash, format)
}

// Clear empties c if it supports it and reports whether it did.
func Clear(ctx context.Context, c Cache) (int, bool, error) {
	cl, ok := c.(Clearer)
	if !ok {
		return 0, false, nil
	}
	n, err := cl.Clear(ctx)
	return n, true, err
}
