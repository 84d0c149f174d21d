package runtime

import (
	"errors"
	"log/slog"

	"github.com/aretw0/lattice/internal/logging"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/pattern"
	"github.com/aretw0/lattice/pkg/rng"
)

// Applier resolves transformation plans against module trees.
type Applier struct {
	logger   *slog.Logger
	registry *rng.Registry
	baseSeed uint64
	hooks    domain.Hooks
}

// Option defines a functional option for configuring the Applier.
type Option func(*Applier)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Applier) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRNG sets the tracker registry the applier bootstraps.
func WithRNG(registry *rng.Registry) Option {
	return func(a *Applier) {
		if registry != nil {
			a.registry = registry
		}
	}
}

// WithBaseSeed sets the base seed used when a tracker is installed.
func WithBaseSeed(seed uint64) Option {
	return func(a *Applier) {
		a.baseSeed = seed
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(a *Applier) {
		a.hooks = hooks
	}
}

// NewApplier creates an applier with the given options. Defaults: no-op
// logger, the package-default RNG registry, and rng.DefaultBaseSeed.
func NewApplier(opts ...Option) *Applier {
	a := &Applier{
		logger:   logging.NewNop(),
		registry: rng.Default(),
		baseSeed: rng.DefaultBaseSeed,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply resolves the plan against the tree rooted at root and returns the
// (possibly replaced) root.
//
// It validates the mesh and makes the RNG tracker ready exactly once, then
// hands off to the internal recursion. Both checks are idempotent, so
// doing them only at the top level is safe; doing them here is required,
// so they run before any transform no matter how the plan is shaped.
//
// For a path plan the returned module is root itself, its subtree mutated
// in place via child replacement. For a direct plan the return value is
// whatever the transform produced; the root itself may be replaced.
func (a *Applier) Apply(root domain.Module, mesh domain.Mesh, plan domain.Plan) (domain.Module, error) {
	if err := ValidateMesh(mesh); err != nil {
		return nil, err
	}
	a.registry.Ensure(mesh, a.baseSeed)
	return a.apply(root, mesh, plan, "")
}

// apply dispatches over the plan shape. prefix is the absolute dotted path
// of m within the top-level tree ("" at the root), carried for hook events.
func (a *Applier) apply(m domain.Module, mesh domain.Mesh, plan domain.Plan, prefix string) (domain.Module, error) {
	switch p := plan.(type) {
	case *domain.DirectPlan:
		return p.Transform.Apply(m, mesh)
	case *domain.PathPlan:
		for _, entry := range p.Entries() {
			if err := a.applyEntry(m, mesh, entry, prefix); err != nil {
				return nil, err
			}
		}
		return m, nil
	default:
		return nil, &domain.InvalidPlanError{Plan: plan}
	}
}

// applyEntry resolves a single pattern→transform binding against the tree
// rooted at root.
func (a *Applier) applyEntry(root domain.Module, mesh domain.Mesh, entry domain.PathEntry, prefix string) error {
	pat, err := pattern.Parse(entry.Path)
	if err != nil {
		return err
	}

	parent := root
	current := root
	name := ""
	node := prefix

	segs := pat.Segments()
	for i, seg := range segs {
		if seg.Wildcard {
			return a.fanOut(current, mesh, pat, segs[i+1:], entry.Transform, node)
		}

		// Literal segment: descend into the named child.
		child, err := current.Child(seg.Name)
		if err != nil {
			if errors.Is(err, domain.ErrChildNotFound) {
				// Deliberate no-match: the pattern simply does not apply to
				// this branch (e.g. a wildcard-expanded sibling without this
				// child). Leave the subtree untouched.
				a.logger.Debug("pattern did not match", "pattern", pat.Source(), "segment", seg.Name, "at", node)
				return nil
			}
			return &domain.LookupError{Segment: seg.Name, Path: pat.Source(), Err: err}
		}
		parent = current
		current = child
		name = seg.Name
		node = joinPath(node, seg.Name)
	}

	// All segments consumed by literal descent: current is the target.
	a.emitMatch(domain.MatchEvent{Pattern: pat.Source(), Node: node})
	out, err := entry.Transform.Apply(current, mesh)
	if err != nil {
		return err
	}
	if err := parent.ReplaceChild(name, out); err != nil {
		return err
	}
	a.logger.Debug("replaced module", "pattern", pat.Source(), "node", node)
	a.emitReplace(domain.ReplaceEvent{Pattern: pat.Source(), Node: node})
	return nil
}

// fanOut handles a wildcard segment: re-enter plan application on every
// immediate child of current (in declared order) with the remainder of the
// pattern. Children that fail to match deeper literal segments resolve to
// no-match on their own; the fan-out itself never pre-filters.
func (a *Applier) fanOut(current domain.Module, mesh domain.Mesh, pat pattern.Pattern, rest []pattern.Segment, t domain.Transform, node string) error {
	direct := len(rest) == 0

	var sub domain.Plan
	if direct {
		sub = domain.Direct(t)
	} else {
		sub = domain.ByPath().On(pattern.Join(rest), t)
	}

	for _, nc := range current.Children() {
		childNode := joinPath(node, nc.Name)
		if direct {
			a.emitMatch(domain.MatchEvent{Pattern: pat.Source(), Node: childNode, Wildcard: true})
		}
		out, err := a.apply(nc.Module, mesh, sub, childNode)
		if err != nil {
			return err
		}
		if err := current.ReplaceChild(nc.Name, out); err != nil {
			return err
		}
		if direct {
			a.logger.Debug("replaced module", "pattern", pat.Source(), "node", childNode)
			a.emitReplace(domain.ReplaceEvent{Pattern: pat.Source(), Node: childNode})
		}
	}
	return nil
}

func (a *Applier) emitMatch(ev domain.MatchEvent) {
	if a.hooks.OnMatch != nil {
		a.hooks.OnMatch(ev)
	}
}

func (a *Applier) emitReplace(ev domain.ReplaceEvent) {
	if a.hooks.OnReplace != nil {
		a.hooks.OnReplace(ev)
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
