// Package logging provides the debug logger. The TUI owns the terminal,
// so log output goes to a file or nowhere.
package logging

import (
	"log/slog"
	"os"
)

// Setup returns a logger writing to the given file path, plus a close
// func. An empty path yields a logger that discards everything.
func Setup(path string) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }
}
