/*
Package lattice applies declarative transformation plans to trees of named
modules laid out over a 1-dimensional device mesh.

A plan says what to apply where. It is either a single Transform, applied
to the whole tree, or an ordered set of dotted path patterns, each bound
to a Transform. A pattern segment is a literal child name or the wildcard
"*", which fans out over every child at that level. Patterns that do not
match a branch are skipped silently; irregular trees are expected.

Lattice does not own the node type, the transforms, or the mesh. Hosts
implement the small interfaces in pkg/domain (or use the in-memory adapter
in pkg/adapters/memory) and lattice drives resolution and replacement:
each matched node is handed to its Transform and the result is installed
in the node's parent.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/lattice"
		"github.com/aretw0/lattice/pkg/domain"
		"github.com/aretw0/lattice/pkg/dsl"
	)

	func main() {
		// Build a tree: root{layers{0{attn, mlp}, 1{attn, mlp}}}
		root := dsl.New("model").
			Group("layers", func(b *dsl.Node) {
				b.Group("0", func(b *dsl.Node) { b.Leaf("attn"); b.Leaf("mlp") })
				b.Group("1", func(b *dsl.Node) { b.Leaf("attn"); b.Leaf("mlp") })
			}).
			Build()

		plan := domain.ByPath().
			On("layers.*.attn", shardColumnwise()).
			On("layers.*.mlp", shardRowwise())

		out, err := lattice.Apply(root, mesh, plan)
		if err != nil {
			log.Fatal(err)
		}
		_ = out // same root; matched children replaced in place
	}

Plans require a 1-dimensional mesh. Hosts with N-dimensional meshes slice
out the dimension they parallelize over before applying.

On the first apply against a mesh that supports coordinated RNG, lattice
installs a mesh-aware random-state tracker (see pkg/rng) and seeds it
deterministically. Later applies leave an installed tracker untouched.
*/
package lattice
