package pycardsyncer

import (
	"context"
	"io"

	"github.com/ahoban/cardpick/internal/backends"
	"github.com/rs/zerolog"
)

var syncArgs = []string{"pycardsyncer"}

// Backend implements the backends.Syncer interface for pycardsyncer
type Backend struct {
	enabled bool
	out     io.Writer
	log     zerolog.Logger
}

// NewBackend creates a new pycardsyncer syncer
func NewBackend(cfg backends.Config) backends.Syncer {
	out := cfg.SyncOutput
	if out == nil {
		out = io.Discard
	}
	return &Backend{
		enabled: backends.CommandAvailable("pycardsyncer"),
		out:     out,
		log:     cfg.Logger,
	}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "pycardsyncer"
}

// Available returns whether pycardsyncer is installed
func (b *Backend) Available() bool {
	return b.enabled
}

// Sync runs pycardsyncer and blocks until it exits
func (b *Backend) Sync(ctx context.Context) error {
	return backends.RunSync(ctx, syncArgs, b.out, b.log)
}

// Register the pycardsyncer syncer
func init() {
	backends.RegisterSyncer("pycardsyncer", func(cfg backends.Config) backends.Syncer { return NewBackend(cfg) })
}
