// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about conversion progress and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetConvertHooks(&myConvertHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Convert().OnExtractStart(ctx, source, page)
//	// ... run extraction ...
//	observability.Convert().OnExtractComplete(ctx, source, page, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Convert Hooks
// =============================================================================

// ConvertHooks receives events from the conversion pipeline.
type ConvertHooks interface {
	// Extraction events, one pair per candidate page.
	OnExtractStart(ctx context.Context, source string, page int)
	OnExtractComplete(ctx context.Context, source string, page int, duration time.Duration, err error)

	// OnPageRegistered fires after a page's assets land in the workspace.
	OnPageRegistered(ctx context.Context, page int, widthPx, heightPx float64)

	// Packaging events around the final archive write.
	OnSealStart(ctx context.Context, dest string)
	OnSealComplete(ctx context.Context, dest string, pages int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from render-cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopConvertHooks is a no-op implementation of ConvertHooks.
type NoopConvertHooks struct{}

func (NoopConvertHooks) OnExtractStart(context.Context, string, int) {}
func (NoopConvertHooks) OnExtractComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopConvertHooks) OnPageRegistered(context.Context, int, float64, float64)          {}
func (NoopConvertHooks) OnSealStart(context.Context, string)                              {}
func (NoopConvertHooks) OnSealComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)       {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)      {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int)  {}

// =============================================================================
// Registration
// =============================================================================

var (
	hooksMu      sync.RWMutex
	convertHooks ConvertHooks = NoopConvertHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
)

// SetConvertHooks registers custom convert hooks.
// This should be called once at application startup before any conversion.
func SetConvertHooks(h ConvertHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		convertHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Convert returns the registered convert hooks.
func Convert() ConvertHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return convertHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	convertHooks = NoopConvertHooks{}
	cacheHooks = NoopCacheHooks{}
}
