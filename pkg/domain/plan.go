package domain

// Plan describes what to apply where. It has exactly two shapes:
//
//   - Direct: a single Transform applied to the whole subtree rooted at
//     the input module.
//   - PathPlan: an ordered mapping from dotted path pattern to Transform,
//     resolved entry by entry against the tree.
//
// The applier type-switches over these shapes; any other implementation
// of the interface is rejected with InvalidPlanError.
type Plan interface {
	plan()
}

// DirectPlan applies one Transform to the root module, with no path
// resolution. The transform's return value replaces the caller's
// reference to the root.
type DirectPlan struct {
	Transform Transform
}

func (*DirectPlan) plan() {}

// Direct wraps a single Transform as a Plan.
func Direct(t Transform) *DirectPlan {
	return &DirectPlan{Transform: t}
}

// PathEntry binds one dotted path pattern to a Transform.
type PathEntry struct {
	Path      string
	Transform Transform
}

// PathPlan is an ordered set of pattern→transform bindings. Entries are
// resolved in the order they were added; each entry's resolution is
// independent (an unmatched pattern is skipped silently, a failing entry
// leaves earlier entries' replacements in effect).
type PathPlan struct {
	entries []PathEntry
}

func (*PathPlan) plan() {}

// ByPath creates an empty path plan.
func ByPath() *PathPlan {
	return &PathPlan{}
}

// On appends a pattern→transform binding. Patterns use dotted segments
// where "*" matches every immediate child at that level, e.g.
// "layers.*.attn".
func (p *PathPlan) On(path string, t Transform) *PathPlan {
	p.entries = append(p.entries, PathEntry{Path: path, Transform: t})
	return p
}

// Entries returns the bindings in insertion order.
func (p *PathPlan) Entries() []PathEntry {
	return p.entries
}
