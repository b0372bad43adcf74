package main

import (
	"io"
	"log/slog"
)

// Levels outside slog's four.
const (
	LevelTrace    = slog.LevelDebug - 4
	LevelCritical = slog.LevelError + 4
)

// levelForVerbosity maps the -v count to the lowest level that is logged.
// With no -v only critical messages are shown.
func levelForVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return LevelCritical
	case verbosity == 1:
		return slog.LevelError
	case verbosity == 2:
		return slog.LevelWarn
	case verbosity == 3:
		return slog.LevelInfo
	case verbosity == 4:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// newLogger creates a text logger writing to w. It does not set the
// global logger.
func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelNames,
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func replaceLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch level {
	case LevelTrace:
		a.Value = slog.StringValue("TRACE")
	case LevelCritical:
		a.Value = slog.StringValue("CRITICAL")
	}
	return a
}
