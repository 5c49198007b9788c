package logging

import "log/slog"

// LevelTrace is more verbose than slog.LevelDebug. It is used for
// per-definition validation detail.
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps the count of -v flags to a log level.
// Zero or negative yields Warn; 1 Info; 2 Debug; 3 or more Trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// levelName renders LevelTrace as TRACE and defers to slog otherwise.
func levelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}
