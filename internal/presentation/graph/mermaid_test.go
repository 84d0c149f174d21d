package graph

import (
	"strings"
	"testing"

	"github.com/aretw0/lattice/pkg/dsl"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	root := dsl.New("model").
		Group("layers", func(b *dsl.Node) { b.Leaf("0"); b.Leaf("1") }).
		Build()

	out := GenerateMermaid("model", root, nil)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `model["model"]`)
	assert.Contains(t, out, "model --> model_layers")
	assert.Contains(t, out, "model_layers --> model_layers_0")
	assert.Contains(t, out, `model_layers_1["1"]`)
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	root := dsl.New("model").
		Group("layers", func(b *dsl.Node) { b.Leaf("0"); b.Leaf("1") }).
		Build()

	overlay := &Overlay{MatchedNodes: []string{"model.layers.0", "model.layers.0"}}
	out := GenerateMermaid("model", root, overlay)

	assert.Contains(t, out, "classDef matched")
	// Duplicate matches style the node only once.
	assert.Equal(t, 1, strings.Count(out, "class model_layers_0 matched;"))
}
