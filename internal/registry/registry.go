package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrModuleNotFound is returned when no module is registered under a name.
var ErrModuleNotFound = errors.New("module not found")

// Module is the interface that all compiled-in modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered modules and loaded manifests for a single
// host instance.
type Registry struct {
	mu        sync.RWMutex
	modules   map[string]*Registration
	manifests map[string]*Manifest
	sealed    bool
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		modules:   make(map[string]*Registration),
		manifests: make(map[string]*Manifest),
	}
}

// Seal ends the loading phase. The catalog is read-only afterwards.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether the loading phase is over.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Lookup returns the registration for name.
func (r *Registry) Lookup(name string) (*Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.modules[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrModuleNotFound, name)
	}
	// Hand out a copy so callers cannot rewrite the catalog entry.
	cp := *reg
	return &cp, nil
}

// Descriptors lists the registered modules sorted by name.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.modules))
	for _, reg := range r.modules {
		out = append(out, reg.Descriptor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Manifest returns the loaded manifest for name, if any.
func (r *Registry) Manifest(name string) (*Manifest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.manifests[name]
	return m, ok
}

// Unload removes a single module and its manifest from the catalog.
func (r *Registry) Unload(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.modules[name]; !ok {
		return fmt.Errorf("cannot unload: %w: '%s'", ErrModuleNotFound, name)
	}
	delete(r.modules, name)
	delete(r.manifests, name)
	return nil
}

// Clear unloads everything and returns the registry to the loading phase.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.modules = make(map[string]*Registration)
	r.manifests = make(map[string]*Manifest)
	r.sealed = false
}
