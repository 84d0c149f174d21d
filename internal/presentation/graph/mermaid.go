package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
)

// Overlay contains plan-resolution results to visualize on the tree.
type Overlay struct {
	MatchedNodes []string // absolute dotted paths matched by a plan
}

// GenerateMermaid produces a Mermaid flowchart syntax string for a module
// tree. Parent-child containment renders as solid arrows; nodes matched by
// the overlay get a highlight class.
func GenerateMermaid(rootName string, root domain.Module, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	writeNode(&sb, rootName, rootName, root)

	if overlay != nil && len(overlay.MatchedNodes) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds.
		sb.WriteString("    classDef matched fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")

		seen := make(map[string]bool)
		for _, path := range overlay.MatchedNodes {
			safeID := sanitizeMermaidID(path)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s matched;\n", safeID))
			}
		}
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, path, label string, m domain.Module) {
	safeID := sanitizeMermaidID(path)
	sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safeID, label))

	for _, nc := range m.Children() {
		childPath := path + "." + nc.Name
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(childPath)))
		writeNode(sb, childPath, nc.Name, nc.Module)
	}
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
