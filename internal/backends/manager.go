package backends

import (
	"fmt"
)

// Manager handles backend selection for the fill and sync strategies
type Manager struct {
	filler Filler
	syncer Syncer
}

// NewManager resolves the configured filler and syncer by name.
// If a name is empty, it tries the built-in backends in order of
// preference and falls back to noop.
func NewManager(cfg Config, fillerName, syncerName string) (*Manager, error) {
	filler, err := resolveFiller(cfg, fillerName)
	if err != nil {
		return nil, err
	}

	syncer, err := resolveSyncer(cfg, syncerName)
	if err != nil {
		return nil, err
	}

	return &Manager{filler: filler, syncer: syncer}, nil
}

func resolveFiller(cfg Config, name string) (Filler, error) {
	if name != "" {
		f, err := CreateFiller(name, cfg)
		if err != nil {
			return nil, fmt.Errorf("creating filler %s: %w", name, err)
		}
		return f, nil
	}

	// Try fillers in order of preference
	for _, candidate := range []string{"khard", "pycarddav", "sqlitedb"} {
		f, err := CreateFiller(candidate, cfg)
		if err != nil {
			continue
		}
		if f.Available() {
			return f, nil
		}
	}

	f, _ := CreateFiller("noop", cfg)
	return f, nil
}

func resolveSyncer(cfg Config, name string) (Syncer, error) {
	if name != "" {
		s, err := CreateSyncer(name, cfg)
		if err != nil {
			return nil, fmt.Errorf("creating syncer %s: %w", name, err)
		}
		return s, nil
	}

	for _, candidate := range []string{"vdirsyncer", "pycardsyncer"} {
		s, err := CreateSyncer(candidate, cfg)
		if err != nil {
			continue
		}
		if s.Available() {
			return s, nil
		}
	}

	s, _ := CreateSyncer("noop", cfg)
	return s, nil
}

// Filler returns the resolved fill strategy
func (m *Manager) Filler() Filler {
	return m.filler
}

// Syncer returns the resolved sync strategy
func (m *Manager) Syncer() Syncer {
	return m.syncer
}
