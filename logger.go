package overlay

import (
	"log/slog"

	"github.com/gogpu/overlay/internal/logging"
)

// SetLogger configures the logger for overlay and all its sub-packages.
// By default no log output is produced. Pass nil to disable logging
// (restore the default silent behavior).
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
//
// Log levels used:
//   - [slog.LevelDebug]: per-event diagnostics (resize dimensions)
//   - [slog.LevelInfo]: lifecycle events (window created, context initialized)
//   - [slog.LevelWarn]: non-fatal issues (window-manager hint not applied)
//
// Example:
//
//	overlay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger. Sub-packages (render/, window/,
// driver/) share the same logger configuration.
func Logger() *slog.Logger {
	return logging.Logger()
}
