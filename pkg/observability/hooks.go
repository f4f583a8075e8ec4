// Package observability provides hooks for the rendering diagnostic channel.
//
// The render core is pure and silent: malformed or unknown input degrades
// to "nothing" without errors. During development, though, it is useful to
// know when content was suppressed — an editor shipped a block kind the
// renderer does not recognize, or a node kind fell through to the
// pass-through rule. Hooks are that channel.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - A hook interface for render events
//   - A no-op default implementation
//   - Registration of custom implementations at startup
//
// This keeps the render packages free of logging dependencies and lets the
// binary decide what the diagnostics mean. Production builds leave the
// no-op default in place; the CLI registers a logging implementation only
// in verbose runs, so degraded rendering stays silent for users.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetRenderHooks(&myHooks{})
//
// Render packages emit events:
//
//	observability.Render().OnUnknownBlock(kind, position)
package observability

import (
	"sync"
	"time"
)

// RenderHooks receives events from the rendering pipeline.
//
// Implementations must be safe for concurrent use: independent documents
// may render on separate goroutines with no coordination.
type RenderHooks interface {
	// OnRenderStart records the beginning of a page render.
	OnRenderStart(page string, blockCount int)

	// OnRenderComplete records a finished page render.
	OnRenderComplete(page string, duration time.Duration)

	// OnUnknownBlock records a block suppressed because its kind has no
	// registered renderer. position is the block's index in its sequence.
	OnUnknownBlock(kind string, position int)

	// OnUnknownNode records a document node rendered via the pass-through
	// rule because its kind is not recognized.
	OnUnknownNode(kind string, position int)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(string, int)              {}
func (NoopRenderHooks) OnRenderComplete(string, time.Duration) {}
func (NoopRenderHooks) OnUnknownBlock(string, int)             {}
func (NoopRenderHooks) OnUnknownNode(string, int)              {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// Call once at application startup, before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
