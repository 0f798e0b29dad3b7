package vdirsyncer

import (
	"context"
	"io"

	"github.com/ahoban/cardpick/internal/backends"
	"github.com/rs/zerolog"
)

var syncArgs = []string{"vdirsyncer", "sync"}

// Backend implements the backends.Syncer interface for vdirsyncer
type Backend struct {
	enabled bool
	out     io.Writer
	log     zerolog.Logger
}

// NewBackend creates a new vdirsyncer syncer
func NewBackend(cfg backends.Config) backends.Syncer {
	out := cfg.SyncOutput
	if out == nil {
		out = io.Discard
	}
	return &Backend{
		enabled: backends.CommandAvailable("vdirsyncer"),
		out:     out,
		log:     cfg.Logger,
	}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "vdirsyncer"
}

// Available returns whether vdirsyncer is installed
func (b *Backend) Available() bool {
	return b.enabled
}

// Sync runs vdirsyncer sync and blocks until it exits
func (b *Backend) Sync(ctx context.Context) error {
	return backends.RunSync(ctx, syncArgs, b.out, b.log)
}

// Register the vdirsyncer syncer
func init() {
	backends.RegisterSyncer("vdirsyncer", func(cfg backends.Config) backends.Syncer { return NewBackend(cfg) })
}
