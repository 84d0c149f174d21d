// Package registry maps transform names to factories, so hosts can
// assemble plans from configuration without importing every transform
// implementation at the call site.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/lattice/pkg/domain"
)

// Factory constructs a Transform from loose arguments.
type Factory func(args map[string]any) (domain.Transform, error)

// Registry manages the available transforms.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a transform factory to the registry.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Build looks up a factory by name and constructs the transform.
// Returns an error if the name is not registered.
func (r *Registry) Build(name string, args map[string]any) (domain.Transform, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("transform not found: %s", name)
	}

	return f(args)
}

// Names returns the registered transform names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Identity returns a transform that leaves the matched module unchanged.
// It is registered under "identity" in registries used for dry runs.
func Identity() domain.Transform {
	return domain.TransformFunc(func(m domain.Module, _ domain.Mesh) (domain.Module, error) {
		return m, nil
	})
}
