package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/lattice/internal/presentation/graph"
	"github.com/aretw0/lattice/pkg/schema"
)

// GraphOptions contains the configuration for the graph command.
type GraphOptions struct {
	TreePath  string
	Highlight []string // patterns whose matches are highlighted in the output
}

// Graph renders a tree file as a Mermaid diagram, optionally highlighting
// the nodes selected by the given patterns.
func Graph(opts GraphOptions, w io.Writer) error {
	spec, err := schema.LoadFile(opts.TreePath)
	if err != nil {
		return err
	}
	root := spec.Build()

	var overlay *graph.Overlay
	if len(opts.Highlight) > 0 {
		overlay = &graph.Overlay{}
		for _, pat := range opts.Highlight {
			matches, err := resolvePattern(root, pat)
			if err != nil {
				return fmt.Errorf("resolving pattern %q: %w", pat, err)
			}
			for _, node := range matches {
				overlay.MatchedNodes = append(overlay.MatchedNodes, spec.Name+"."+node)
			}
		}
	}

	_, err = io.WriteString(w, graph.GenerateMermaid(spec.Name, root, overlay))
	return err
}
