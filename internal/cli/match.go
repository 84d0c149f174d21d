package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/lattice/internal/runtime"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/registry"
	"github.com/aretw0/lattice/pkg/rng"
	"github.com/aretw0/lattice/pkg/schema"
	"github.com/muesli/termenv"
)

// MatchOptions contains the configuration for the match command.
type MatchOptions struct {
	TreePath string
	Patterns []string
	NoColor  bool
}

// Match dry-runs pattern resolution against a tree file and reports the
// nodes each pattern selects. The tree is never mutated: resolution runs
// with the identity transform.
func Match(opts MatchOptions, w io.Writer) error {
	spec, err := schema.LoadFile(opts.TreePath)
	if err != nil {
		return err
	}
	root := spec.Build()

	var out *termenv.Output
	if opts.NoColor {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	} else {
		out = termenv.NewOutput(w)
	}

	for _, pat := range opts.Patterns {
		matches, err := resolvePattern(root, pat)
		if err != nil {
			return fmt.Errorf("resolving pattern %q: %w", pat, err)
		}

		fmt.Fprintln(w, out.String(pat).Bold())
		if len(matches) == 0 {
			fmt.Fprintf(w, "  %s\n", out.String("(no match)").Faint())
			continue
		}
		for _, node := range matches {
			mark := out.String("✓").Foreground(out.Color("2"))
			fmt.Fprintf(w, "  %s %s.%s\n", mark, spec.Name, node)
		}
	}
	return nil
}

// resolvePattern applies a single-entry identity plan and collects the
// matched absolute paths via hooks.
func resolvePattern(root domain.Module, pat string) ([]string, error) {
	var matches []string
	applier := runtime.NewApplier(
		runtime.WithRNG(rng.NewRegistry()),
		runtime.WithHooks(domain.Hooks{
			OnMatch: func(ev domain.MatchEvent) {
				matches = append(matches, ev.Node)
			},
		}),
	)

	plan := domain.ByPath().On(pat, registry.Identity())
	if _, err := applier.Apply(root, inspectionMesh{}, plan); err != nil {
		return nil, err
	}
	return matches, nil
}
