// Package cache provides the render cache for rasterized page images.
//
// Rasterizing a page SVG at intrinsic size is the expensive step of a
// conversion, and page content is immutable for a given source document, so
// rendered PNG bytes are cached keyed by the SHA-256 of the SVG bytes.
// Re-converting the same document skips every render.
//
// Two implementations exist: FileCache for CLI usage (entries under the user
// cache directory) and NullCache to disable caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for rendered artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (zero means no expiry).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer builds cache keys for the artifact kinds this tool stores.
type Keyer interface {
	// RenderKey is the key for a page render, derived from the SVG content.
	RenderKey(svgHash string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates the key for a rendered page.
func (k *DefaultKeyer) RenderKey(svgHash string) string {
	return "render:" + svgHash
}
