// SPDX-License-Identifier: MIT

package containers

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
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
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for containers and the packages built on
// it (vertex, texels). By default nothing is logged.
//
// SetLogger is safe for concurrent use. Pass nil to restore silence.
//
// Log levels used:
//   - [slog.LevelDebug]: rejected buffers and layouts, derived vertex layouts
//   - [slog.LevelWarn]: lossy image conversions (texels.FromImage from
//     16-bit or non-premultiplied color models)
//
// Element access (At/Set) never logs.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages call this to share the
// same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
