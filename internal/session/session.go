// Package session orchestrates one picker invocation: optional sync,
// optional cache invalidation, fill, interactive selection, formatting.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ahoban/cardpick/internal/backends"
	"github.com/ahoban/cardpick/internal/cache"
	"github.com/ahoban/cardpick/internal/contacts"
)

// RefreshLevel is the three-way user intent derived from the repeated
// refresh flag: no refresh, re-fetch only, or sync-then-re-fetch.
type RefreshLevel int

const (
	RefreshNone RefreshLevel = iota
	RefreshSingle
	RefreshDouble
)

// LevelFromCount maps a counted -r flag to a RefreshLevel
func LevelFromCount(n int) RefreshLevel {
	switch {
	case n <= 0:
		return RefreshNone
	case n == 1:
		return RefreshSingle
	default:
		return RefreshDouble
	}
}

// ErrCanceled is returned by a Picker when the user dismisses the
// selection UI without confirming.
var ErrCanceled = errors.New("selection canceled")

// Picker is the injected interactive-selection capability. Pick presents
// the candidate lines and returns the confirmed subset in selection
// order, or ErrCanceled.
type Picker interface {
	Pick(ctx context.Context, lines []string) ([]string, error)
}

// Session wires the cache, the configured backends, and the picker for
// one search invocation.
type Session struct {
	cache  *cache.Cache
	filler backends.Filler
	syncer backends.Syncer
	picker Picker
	log    zerolog.Logger
}

// New creates a session around an empty cache
func New(filler backends.Filler, syncer backends.Syncer, picker Picker, log zerolog.Logger) *Session {
	return &Session{
		cache:  cache.New(),
		filler: filler,
		syncer: syncer,
		picker: picker,
		log:    log,
	}
}

// Run drives a single search invocation. Depending on level it first
// syncs with the server and/or invalidates the cache, then fills the
// cache if needed, presents the lines to the picker, and formats the
// confirmed selection. Sync always completes before the reset, and the
// reset before the fill. A canceled pick returns ErrCanceled.
func (s *Session) Run(ctx context.Context, level RefreshLevel) (string, error) {
	switch level {
	case RefreshDouble:
		s.log.Debug().Str("syncer", s.syncer.Name()).Msg("syncing with server")
		if err := s.syncer.Sync(ctx); err != nil {
			return "", fmt.Errorf("syncing contacts: %w", err)
		}
		s.cache.Reset()
	case RefreshSingle:
		s.cache.Reset()
	}

	lines, err := s.cache.GetOrFill(ctx, s.filler)
	if err != nil {
		return "", fmt.Errorf("listing contacts: %w", err)
	}
	s.log.Debug().Str("filler", s.filler.Name()).Int("contacts", len(lines)).Msg("cache ready")

	selected, err := s.picker.Pick(ctx, lines)
	if err != nil {
		return "", err
	}

	return contacts.FormatSelection(selected), nil
}
