package domain

// NamedChild pairs a child module with the name it is registered under
// in its parent.
type NamedChild struct {
	Name   string
	Module Module
}

// Module is the tree-node capability the applier operates on.
// The host system owns the concrete node type and its execution semantics;
// the applier only reads child names (in declared order) and replaces
// matched children with the result of a Transform.
type Module interface {
	// Children returns the immediate children in their declared order.
	Children() []NamedChild

	// Child looks up an immediate child by name.
	// If no child is registered under the name, it returns ErrChildNotFound
	// (checked with errors.Is). Any other error is treated as a lookup
	// fault and aborts plan application.
	Child(name string) (Module, error)

	// ReplaceChild swaps the child registered under name for a new module.
	ReplaceChild(name string, child Module) error
}
