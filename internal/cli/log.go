package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fontify/pkg/observability"
)

// newLogger creates a logger writing to w at the given level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level with the elapsed time, rounded to the
// microsecond since renders are fast. Example: "rendered 40 styles (312µs)".
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Microsecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports render and state events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.RenderHooks = logHooks{}
	_ observability.StateHooks  = logHooks{}
)

func (h logHooks) OnRenderStart(_ context.Context, category string, styles int) {
	h.logger.Debug("render start", "category", category, "styles", styles)
}

func (h logHooks) OnRenderComplete(_ context.Context, category string, styles int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "category", category, "rendered", styles, "err", err)
		return
	}
	h.logger.Debug("render done", "category", category, "styles", styles, "duration", d)
}

func (h logHooks) OnStyleApplied(_ context.Context, id string, d time.Duration) {
	h.logger.Debug("style applied", "id", id, "duration", d)
}

func (h logHooks) OnLoad(_ context.Context, path string, err error) {
	if err != nil {
		h.logger.Debug("state load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("state loaded", "path", path)
}

func (h logHooks) OnSave(_ context.Context, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("state save failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("state saved", "path", path, "duration", d)
}

func (h logHooks) OnPin(_ context.Context, id string, pinned bool) {
	h.logger.Debug("pin changed", "id", id, "pinned", pinned)
}

func (h logHooks) OnHistory(_ context.Context, size int) {
	h.logger.Debug("history changed", "size", size)
}
