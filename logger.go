package glyphr

import "context"
import "log/slog"
import "sync/atomic"

// Discards all records. Enabled returns false, so disabled
// logging doesn't even format the messages.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used by glyphr renderers and the job runner.
// By default glyphr produces no log output. Passing nil restores
// the silent default. Safe for concurrent use.
//
// Levels used:
//  - [slog.LevelDebug]: skipped glyphs, clipped glyphs, truncation points.
//  - [slog.LevelInfo]: job progress (written outputs).
//  - [slog.LevelWarn]: runes missing from the active font.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
