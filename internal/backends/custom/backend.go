// Package custom provides user-supplied fill and sync strategies whose
// argv comes from configuration instead of a built-in tool.
package custom

import (
	"context"
	"fmt"
	"io"

	"github.com/ahoban/cardpick/internal/backends"
	"github.com/rs/zerolog"
)

// Filler runs a user-supplied contact listing command. The command is
// expected to follow the same convention as the built-in tools: one
// mutt-format line per contact after an informational header line.
type Filler struct {
	argv []string
}

// NewFiller creates a filler around the given argv
func NewFiller(argv []string) backends.Filler {
	return &Filler{argv: argv}
}

// Name returns the backend identifier
func (f *Filler) Name() string {
	return "custom"
}

// Available returns whether a command is configured and installed
func (f *Filler) Available() bool {
	return len(f.argv) > 0 && backends.CommandAvailable(f.argv[0])
}

// Fill runs the configured command and returns its mutt-format lines
func (f *Filler) Fill(ctx context.Context) ([]string, error) {
	if len(f.argv) == 0 {
		return nil, fmt.Errorf("no custom fill command configured")
	}
	return backends.RunLines(ctx, f.argv)
}

// Syncer runs a user-supplied sync command.
type Syncer struct {
	argv []string
	out  io.Writer
	log  zerolog.Logger
}

// NewSyncer creates a syncer around the given argv
func NewSyncer(argv []string, out io.Writer, log zerolog.Logger) backends.Syncer {
	if out == nil {
		out = io.Discard
	}
	return &Syncer{argv: argv, out: out, log: log}
}

// Name returns the backend identifier
func (s *Syncer) Name() string {
	return "custom"
}

// Available returns whether a command is configured and installed
func (s *Syncer) Available() bool {
	return len(s.argv) > 0 && backends.CommandAvailable(s.argv[0])
}

// Sync runs the configured command and blocks until it exits
func (s *Syncer) Sync(ctx context.Context) error {
	if len(s.argv) == 0 {
		return fmt.Errorf("no custom sync command configured")
	}
	return backends.RunSync(ctx, s.argv, s.out, s.log)
}

// Register the custom backends
func init() {
	backends.RegisterFiller("custom", func(cfg backends.Config) backends.Filler {
		return NewFiller(cfg.FillCommand)
	})
	backends.RegisterSyncer("custom", func(cfg backends.Config) backends.Syncer {
		return NewSyncer(cfg.SyncCommand, cfg.SyncOutput, cfg.Logger)
	})
}
