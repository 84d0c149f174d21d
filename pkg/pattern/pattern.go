// Package pattern parses the dotted path patterns used by plan entries.
//
// A pattern is a dot-separated sequence of segments. Each segment is
// either a literal child name or the wildcard token "*", which matches
// every immediate child at that level. Patterns are immutable once parsed.
package pattern

import (
	"fmt"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
)

// Wildcard is the segment token matching all children at one level.
const Wildcard = "*"

// Segment is one dot-separated token of a pattern.
type Segment struct {
	Name     string
	Wildcard bool
}

// Pattern is an ordered, non-empty sequence of segments.
type Pattern struct {
	source   string
	segments []Segment
}

// Parse splits a dotted path string into a Pattern.
// An empty path is rejected with domain.ErrEmptyPlanPath.
func Parse(path string) (Pattern, error) {
	if path == "" {
		return Pattern{}, fmt.Errorf("parsing plan path: %w", domain.ErrEmptyPlanPath)
	}

	parts := strings.Split(path, ".")
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return Pattern{}, fmt.Errorf("plan path %q contains an empty segment", path)
		}
		segments = append(segments, Segment{
			Name:     part,
			Wildcard: part == Wildcard,
		})
	}

	return Pattern{source: path, segments: segments}, nil
}

// Source returns the original dotted string the pattern was parsed from.
func (p Pattern) Source() string {
	return p.source
}

// Segments returns the parsed segments in order.
func (p Pattern) Segments() []Segment {
	return p.segments
}

// Join reassembles a slice of segments into a dotted path string.
// It is used to reconstitute the remainder of a pattern after a wildcard.
func Join(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.Name
	}
	return strings.Join(parts, ".")
}
