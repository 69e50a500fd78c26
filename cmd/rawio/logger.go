package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger writes text records when stderr is a terminal and JSON
// records otherwise. RAWIO_DEBUG enables debug output, which includes
// the library's open, close and rename records.
func newLogger(w io.Writer, fd int) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if os.Getenv("RAWIO_DEBUG") != "" {
		options.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if term.IsTerminal(fd) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
