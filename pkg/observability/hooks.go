// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; the defaults do
// nothing. The CLI installs hooks that log at debug level, and a host
// embedding fontify can install its own (metrics, tracing) without the
// libraries depending on a backend.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetStateHooks(&myStateHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, category, n)
//	// ... apply styles ...
//	observability.Render().OnRenderComplete(ctx, category, n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the style pipeline.
type RenderHooks interface {
	// OnRenderStart fires before a batch of styles is applied.
	OnRenderStart(ctx context.Context, category string, styles int)

	// OnRenderComplete fires after a batch finished or failed.
	OnRenderComplete(ctx context.Context, category string, styles int, duration time.Duration, err error)

	// OnStyleApplied fires for a single-style render (apply, copy).
	OnStyleApplied(ctx context.Context, styleID string, duration time.Duration)
}

// =============================================================================
// State Hooks
// =============================================================================

// StateHooks receives events from the persisted user state.
type StateHooks interface {
	// OnLoad records a state file read.
	OnLoad(ctx context.Context, path string, err error)

	// OnSave records a state file write.
	OnSave(ctx context.Context, path string, duration time.Duration, err error)

	// OnPin records a pin being added (pinned=true) or removed.
	OnPin(ctx context.Context, styleID string, pinned bool)

	// OnHistory records a copied text entering the history.
	OnHistory(ctx context.Context, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopRenderHooks) OnStyleApplied(context.Context, string, time.Duration) {}

// NoopStateHooks is a no-op implementation of StateHooks.
type NoopStateHooks struct{}

func (NoopStateHooks) OnLoad(context.Context, string, error)                {}
func (NoopStateHooks) OnSave(context.Context, string, time.Duration, error) {}
func (NoopStateHooks) OnPin(context.Context, string, bool)                  {}
func (NoopStateHooks) OnHistory(context.Context, int)                       {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	stateHooks  StateHooks  = NoopStateHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. A nil value is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetStateHooks registers custom state hooks. A nil value is ignored.
func SetStateHooks(h StateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		stateHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// State returns the registered state hooks.
func State() StateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return stateHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	stateHooks = NoopStateHooks{}
}
