// Package memory provides an in-memory implementation of domain.Module.
//
// It is the reference tree-node type used by the DSL builder, the schema
// loader, the CLI, and the test suites. Hosts embedding lattice usually
// adapt their own node type instead.
package memory

import (
	"fmt"

	"github.com/aretw0/lattice/pkg/domain"
)

// Module is a tree node with insertion-ordered named children and an
// optional metadata bag.
type Module struct {
	name     string
	order    []string
	children map[string]domain.Module

	// Metadata carries host-defined key-value pairs (kind, labels...).
	Metadata map[string]string
}

// New creates a module with the given name and no children.
func New(name string) *Module {
	return &Module{
		name:     name,
		children: make(map[string]domain.Module),
	}
}

// Name returns the module's own name.
func (m *Module) Name() string {
	return m.name
}

// AddChild registers a child under the given name, preserving insertion
// order. Registering an existing name overwrites the child in place.
func (m *Module) AddChild(name string, child domain.Module) *Module {
	if _, ok := m.children[name]; !ok {
		m.order = append(m.order, name)
	}
	m.children[name] = child
	return m
}

// Children returns the immediate children in insertion order.
func (m *Module) Children() []domain.NamedChild {
	out := make([]domain.NamedChild, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, domain.NamedChild{Name: name, Module: m.children[name]})
	}
	return out
}

// Child looks up an immediate child by name.
func (m *Module) Child(name string) (domain.Module, error) {
	child, ok := m.children[name]
	if !ok {
		return nil, fmt.Errorf("%q has no child %q: %w", m.name, name, domain.ErrChildNotFound)
	}
	return child, nil
}

// ReplaceChild swaps the child registered under name. The name must
// already exist; replacement never inserts.
func (m *Module) ReplaceChild(name string, child domain.Module) error {
	if _, ok := m.children[name]; !ok {
		return fmt.Errorf("cannot replace %q under %q: %w", name, m.name, domain.ErrChildNotFound)
	}
	m.children[name] = child
	return nil
}

var _ domain.Module = (*Module)(nil)
