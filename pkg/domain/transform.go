package domain

// Transform is a pluggable per-node transformation. Implementations decide
// what "transforming" means (sharding, wrapping, rewriting); the applier
// only routes matched modules through Apply and installs the result in the
// parent.
type Transform interface {
	// Apply consumes a module and the mesh and produces its replacement.
	// The replacement may be the same module (mutated in place), a wrapper
	// around it, or an entirely new module.
	Apply(m Module, mesh Mesh) (Module, error)
}

// TransformFunc adapts an ordinary function to the Transform interface.
type TransformFunc func(m Module, mesh Mesh) (Module, error)

// Apply calls f(m, mesh).
func (f TransformFunc) Apply(m Module, mesh Mesh) (Module, error) {
	return f(m, mesh)
}
