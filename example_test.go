package lattice_test

import (
	"fmt"
	"log"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/dsl"
)

type exampleMesh struct{}

func (exampleMesh) NDim() int                    { return 1 }
func (exampleMesh) DeviceKind() string           { return "cpu" }
func (exampleMesh) SupportsCoordinatedRNG() bool { return false }

type annotated struct {
	domain.Module
	strategy string
}

// ExampleApply demonstrates applying a path-keyed plan to a module tree
// built purely in memory.
func ExampleApply() {
	// 1. Define the tree using pure Go builders
	root := dsl.New("model").
		Group("layers", func(b *dsl.Node) {
			b.Group("0", func(b *dsl.Node) { b.Leaf("attn"); b.Leaf("mlp") })
			b.Group("1", func(b *dsl.Node) { b.Leaf("attn"); b.Leaf("mlp") })
		}).
		Leaf("head").
		Build()

	annotate := func(strategy string) domain.Transform {
		return domain.TransformFunc(func(m domain.Module, _ domain.Mesh) (domain.Module, error) {
			return &annotated{Module: m, strategy: strategy}, nil
		})
	}

	// 2. Describe where each transformation applies
	plan := domain.ByPath().
		On("layers.*.attn", annotate("colwise")).
		On("head", annotate("rowwise"))

	// 3. Apply over a 1-dimensional mesh
	if _, err := lattice.Apply(root, exampleMesh{}, plan); err != nil {
		log.Fatal(err)
	}

	printNodes(root, "model", "")
	// Output:
	// model
	//   layers
	//     0
	//       attn [colwise]
	//       mlp
	//     1
	//       attn [colwise]
	//       mlp
	//   head [rowwise]
}

func printNodes(m domain.Module, name, indent string) {
	if a, ok := m.(*annotated); ok {
		fmt.Printf("%s%s [%s]\n", indent, name, a.strategy)
	} else {
		fmt.Printf("%s%s\n", indent, name)
	}
	for _, nc := range m.Children() {
		printNodes(nc.Module, nc.Name, indent+"  ")
	}
}
