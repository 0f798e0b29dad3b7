package backends

import (
	"fmt"
	"sync"
)

// Registry manages available filler and syncer backends
type Registry struct {
	mu      sync.RWMutex
	fillers map[string]FillerFactory
	syncers map[string]SyncerFactory
}

// NewRegistry creates a new backend registry
func NewRegistry() *Registry {
	return &Registry{
		fillers: make(map[string]FillerFactory),
		syncers: make(map[string]SyncerFactory),
	}
}

// RegisterFiller adds a new filler factory to the registry
func (r *Registry) RegisterFiller(name string, factory FillerFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fillers[name]; exists {
		return fmt.Errorf("filler %s already registered", name)
	}

	r.fillers[name] = factory
	return nil
}

// RegisterSyncer adds a new syncer factory to the registry
func (r *Registry) RegisterSyncer(name string, factory SyncerFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.syncers[name]; exists {
		return fmt.Errorf("syncer %s already registered", name)
	}

	r.syncers[name] = factory
	return nil
}

// CreateFiller instantiates a filler by name
func (r *Registry) CreateFiller(name string, cfg Config) (Filler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.fillers[name]
	if !exists {
		return nil, fmt.Errorf("filler %s not registered", name)
	}

	return factory(cfg), nil
}

// CreateSyncer instantiates a syncer by name
func (r *Registry) CreateSyncer(name string, cfg Config) (Syncer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.syncers[name]
	if !exists {
		return nil, fmt.Errorf("syncer %s not registered", name)
	}

	return factory(cfg), nil
}

// ListFillers returns all registered filler names
func (r *Registry) ListFillers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fillers))
	for name := range r.fillers {
		names = append(names, name)
	}
	return names
}

// ListSyncers returns all registered syncer names
func (r *Registry) ListSyncers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.syncers))
	for name := range r.syncers {
		names = append(names, name)
	}
	return names
}

// Global registry instance
var defaultRegistry = NewRegistry()

// RegisterFiller adds a filler to the global registry
func RegisterFiller(name string, factory FillerFactory) error {
	return defaultRegistry.RegisterFiller(name, factory)
}

// RegisterSyncer adds a syncer to the global registry
func RegisterSyncer(name string, factory SyncerFactory) error {
	return defaultRegistry.RegisterSyncer(name, factory)
}

// CreateFiller creates a filler from the global registry
func CreateFiller(name string, cfg Config) (Filler, error) {
	return defaultRegistry.CreateFiller(name, cfg)
}

// CreateSyncer creates a syncer from the global registry
func CreateSyncer(name string, cfg Config) (Syncer, error) {
	return defaultRegistry.CreateSyncer(name, cfg)
}

// ListFillers returns all registered filler names from the global registry
func ListFillers() []string {
	return defaultRegistry.ListFillers()
}

// ListSyncers returns all registered syncer names from the global registry
func ListSyncers() []string {
	return defaultRegistry.ListSyncers()
}
