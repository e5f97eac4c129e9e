package rose

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a host renders frames.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for rose and its sub-packages.
// By default, rose produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by rose:
//   - [slog.LevelDebug]: per-frame diagnostics (view, slot count, max count)
//   - [slog.LevelInfo]: host lifecycle events (dataset loaded, file written)
//   - [slog.LevelWarn]: rejected input documents
//
// Example:
//
//	rose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by rose.
// Sub-packages (raster, svg, internal/statsjson) call this to share the
// same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
