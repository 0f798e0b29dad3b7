package pycarddav

import (
	"context"

	"github.com/ahoban/cardpick/internal/backends"
)

// pc_query -m prints mutt-format query results with a one-line banner
// at the top that RunLines strips.
var fillArgs = []string{"pc_query", "-m"}

// Backend implements the backends.Filler interface for pycarddav's pc_query
type Backend struct {
	enabled bool
}

// NewBackend creates a new pycarddav filler
func NewBackend() backends.Filler {
	return &Backend{
		enabled: backends.CommandAvailable("pc_query"),
	}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "pycarddav"
}

// Available returns whether pc_query is installed
func (b *Backend) Available() bool {
	return b.enabled
}

// Fill enumerates all pycarddav addresses as raw mutt-format lines
func (b *Backend) Fill(ctx context.Context) ([]string, error) {
	return backends.RunLines(ctx, fillArgs)
}

// Register the pycarddav filler
func init() {
	backends.RegisterFiller("pycarddav", func(cfg backends.Config) backends.Filler { return NewBackend() })
}
