// Package cache holds the raw contact lines fetched from a fill backend.
package cache

import (
	"context"

	"github.com/ahoban/cardpick/internal/backends"
)

// Cache owns the raw mutt-format lines for one picker session. It is
// either empty (not yet fetched, or reset) or fully populated from a
// single successful fill; a failed fill leaves it empty.
//
// It is not safe for concurrent use; callers must confine access to a
// single goroutine (e.g. the Bubble Tea update loop).
type Cache struct {
	lines []string
}

// New creates an empty cache
func New() *Cache {
	return &Cache{}
}

// GetOrFill returns the cached lines, invoking filler exactly once to
// populate the cache if it is empty. Repeated calls without an
// intervening Reset never re-invoke the filler.
func (c *Cache) GetOrFill(ctx context.Context, filler backends.Filler) ([]string, error) {
	if c.lines == nil {
		lines, err := filler.Fill(ctx)
		if err != nil {
			return nil, err
		}
		if lines == nil {
			lines = []string{}
		}
		c.lines = lines
	}
	return c.lines, nil
}

// Reset clears the cached lines unconditionally. The next GetOrFill
// triggers a fresh fill.
func (c *Cache) Reset() {
	c.lines = nil
}

// Len returns the number of cached lines
func (c *Cache) Len() int {
	return len(c.lines)
}
