package gridview

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent discards every record; its handler reports every level disabled, so
// callers skip building attributes.
var silent = slog.New(slog.DiscardHandler)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(silent)
}

// SetLogger configures the logger for gridview and its sub-packages.
// By default gridview produces no log output. Pass nil to restore that.
//
// Log levels used by gridview:
//   - [slog.LevelDebug]: renders, gesture classification, grid decoding
//   - [slog.LevelInfo]: replay progress in the demo host
//   - [slog.LevelWarn]: rejected gestures (through the default Notifier)
//
// Example:
//
//	gridview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by gridview.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debugEnabled reports whether per-frame debug records would be kept.
func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
