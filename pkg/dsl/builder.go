// Package dsl provides a fluent builder for in-memory module trees.
//
// It is a convenience layer over pkg/adapters/memory for tests, examples,
// and hosts that assemble trees programmatically:
//
//	root := dsl.New("model").
//		Group("layers", func(b *dsl.Node) {
//			b.Group("0", func(b *dsl.Node) { b.Leaf("attn"); b.Leaf("mlp") })
//			b.Group("1", func(b *dsl.Node) { b.Leaf("attn"); b.Leaf("mlp") })
//		}).
//		Build()
package dsl

import (
	"github.com/aretw0/lattice/pkg/adapters/memory"
)

// Node builds one module and its children.
type Node struct {
	module *memory.Module
}

// New starts building a tree rooted at a module with the given name.
func New(name string) *Node {
	return &Node{module: memory.New(name)}
}

// Group adds a child module and descends into it via fn.
func (n *Node) Group(name string, fn func(*Node)) *Node {
	child := &Node{module: memory.New(name)}
	if fn != nil {
		fn(child)
	}
	n.module.AddChild(name, child.module)
	return n
}

// Leaf adds an empty child module.
func (n *Node) Leaf(name string) *Node {
	n.module.AddChild(name, memory.New(name))
	return n
}

// Meta sets a metadata key on the module being built.
func (n *Node) Meta(key, value string) *Node {
	if n.module.Metadata == nil {
		n.module.Metadata = make(map[string]string)
	}
	n.module.Metadata[key] = value
	return n
}

// Build returns the assembled module tree.
func (n *Node) Build() *memory.Module {
	return n.module
}
