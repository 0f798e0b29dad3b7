package khard

import (
	"context"

	"github.com/ahoban/cardpick/internal/backends"
)

// khard prints one "email \t name \t type" line per address, preceded by
// an informational header line that RunLines strips.
var fillArgs = []string{"khard", "email", "--parsable"}

// Backend implements the backends.Filler interface for khard
type Backend struct {
	enabled bool
}

// NewBackend creates a new khard filler
func NewBackend() backends.Filler {
	return &Backend{
		enabled: backends.CommandAvailable("khard"),
	}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "khard"
}

// Available returns whether khard is installed
func (b *Backend) Available() bool {
	return b.enabled
}

// Fill enumerates all khard addresses as raw mutt-format lines
func (b *Backend) Fill(ctx context.Context) ([]string, error) {
	return backends.RunLines(ctx, fillArgs)
}

// Register the khard filler
func init() {
	backends.RegisterFiller("khard", func(cfg backends.Config) backends.Filler { return NewBackend() })
}
