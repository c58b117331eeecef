package mushaf

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/digitalkhatt/mushaf/corpus"
	"github.com/digitalkhatt/mushaf/shape"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message
// formatting entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for mushaf and its sub-packages.
// By default no log output is produced. Pass nil to restore the silent
// default. Safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: internal diagnostics (font capabilities,
//     layout decisions)
//   - [slog.LevelWarn]: non-fatal issues (corpus anomalies, rejected
//     draw calls, unreadable optional font tables)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	corpus.SetLogger(l)
	shape.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
