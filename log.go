package tinyjpeg

import (
	"context"
	"log/slog"
)

// logger is the structured logger used for the Debug-level marker/scan
// trace. It defaults to slog's package default so that a caller who never
// touches logging pays for nothing beyond the Enabled check below.
var logger = slog.Default()

// SetLogger replaces the logger used for debug tracing. Passing nil
// restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// logDebug emits a Debug-level record, short-circuiting before touching the
// logger's handler when nothing downstream would observe it.
func logDebug(msg string, args ...any) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug(msg, args...)
}
