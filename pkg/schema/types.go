// Package schema defines the YAML module-tree definition consumed by the
// lattice CLI and by hosts that describe trees declaratively.
//
// Plans themselves are never serialized; only trees are. A definition
// looks like:
//
//	name: model
//	children:
//	  - name: layers
//	    children:
//	      - name: "0"
//	        children:
//	          - name: attn
//	          - name: mlp
//
// Children are a list (not a map) so declared order survives decoding.
package schema

import (
	"github.com/aretw0/lattice/pkg/adapters/memory"
)

// ModuleSpec describes one module and its children.
type ModuleSpec struct {
	Name     string            `yaml:"name" mapstructure:"name"`
	Metadata map[string]string `yaml:"metadata,omitempty" mapstructure:"metadata"`
	Children []ModuleSpec      `yaml:"children,omitempty" mapstructure:"children"`
}

// Build materializes the spec into an in-memory module tree.
// The spec must have been validated first; Build does not re-check names.
func (s *ModuleSpec) Build() *memory.Module {
	m := memory.New(s.Name)
	if len(s.Metadata) > 0 {
		m.Metadata = make(map[string]string, len(s.Metadata))
		for k, v := range s.Metadata {
			m.Metadata[k] = v
		}
	}
	for i := range s.Children {
		child := &s.Children[i]
		m.AddChild(child.Name, child.Build())
	}
	return m
}
