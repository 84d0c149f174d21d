package domain

// MatchEvent describes one concrete node matched by a plan entry.
type MatchEvent struct {
	Pattern  string // the pattern that produced the match
	Node     string // absolute dotted path of the matched node
	Wildcard bool   // true when the match came out of a wildcard fan-out
}

// ReplaceEvent describes one completed replacement.
type ReplaceEvent struct {
	Pattern string // the pattern that produced the replacement
	Node    string // absolute dotted path of the replaced node
}

// Hooks defines optional callbacks for applier observability. Nil
// callbacks are skipped.
type Hooks struct {
	OnMatch   func(MatchEvent)
	OnReplace func(ReplaceEvent)
}
