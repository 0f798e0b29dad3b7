// Package logging provides the application logger and the raw sink used
// for redirected external-process output. The TUI owns the terminal, so
// everything goes to a log file rather than stdout.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Log bundles a zerolog.Logger with the raw writer the sync backends
// redirect their process output into.
type Log struct {
	zerolog.Logger
	out io.Writer
}

// New opens (or creates) the log file at path and returns a JSON logger
// writing to it. If the file cannot be opened the logger falls back to
// stderr so the invocation still works.
func New(path string) *Log {
	var out io.Writer = os.Stderr
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
			if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				out = f
			}
		}
	}

	logger := zerolog.New(out).With().
		Timestamp().
		Logger()

	return &Log{Logger: logger, out: out}
}

// Nop returns a *Log that discards everything. Intended for tests.
func Nop() *Log {
	return &Log{Logger: zerolog.Nop(), out: io.Discard}
}

// Writer returns the raw sink underneath the logger, for external
// process output that should land in the same place as the log entries.
func (l *Log) Writer() io.Writer {
	return l.out
}
