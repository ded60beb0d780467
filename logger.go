package xoverlay

import (
	"log/slog"

	"github.com/gogpu/xoverlay/internal/xlog"
)

// SetLogger configures the logger used by the xoverlay engine and every
// internal pipeline stage. By default, xoverlay produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by xoverlay:
//   - [slog.LevelDebug]: per-phase diagnostics (column count, chosen CPU
//     count, link count, node and shape counts after extraction)
//   - [slog.LevelWarn]: recovered invariant violations (a face-extraction
//     walk that failed to close, a winding sweep that did not return to
//     the empty count, a graph node built with fewer than 2 links) —
//     the engine continues and returns a partial result for that region
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	xoverlay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	xlog.Set(l)
}

// Logger returns the current logger used by xoverlay.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return xlog.Get()
}
