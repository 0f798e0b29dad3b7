package backends

import (
	"context"
	"fmt"
)

// NoopFiller is a filler that has no contact source, used when nothing
// is configured and no tool is found on the system
type NoopFiller struct{}

// Name returns the backend identifier
func (n *NoopFiller) Name() string {
	return "noop"
}

// Available always returns false for the noop filler
func (n *NoopFiller) Available() bool {
	return false
}

// Fill returns an error indicating no contact source is configured
func (n *NoopFiller) Fill(ctx context.Context) ([]string, error) {
	return nil, fmt.Errorf("no contact source configured")
}

// NoopSyncer is a syncer that does nothing, used when no sync tool is
// configured. Sync requests become a no-op instead of a failure.
type NoopSyncer struct{}

// Name returns the backend identifier
func (n *NoopSyncer) Name() string {
	return "noop"
}

// Available always returns false for the noop syncer
func (n *NoopSyncer) Available() bool {
	return false
}

// Sync does nothing
func (n *NoopSyncer) Sync(ctx context.Context) error {
	return nil
}

// Register the noop backends
func init() {
	RegisterFiller("noop", func(cfg Config) Filler { return &NoopFiller{} })
	RegisterSyncer("noop", func(cfg Config) Syncer { return &NoopSyncer{} })
}
