// Package logging configures the slog logger shared by firefox-fact.
//
// Logs always go to stderr: stdout belongs to the fact host that parses it.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup installs a stderr logger as the slog default and returns it.
// debug forces slog.LevelDebug regardless of level.
func Setup(level slog.Level, debug bool) *slog.Logger {
	if debug {
		level = slog.LevelDebug
	}
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)

	return logger
}
