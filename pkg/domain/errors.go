package domain

import (
	"errors"
	"fmt"
)

// ErrChildNotFound is returned by Module.Child when no child is registered
// under the requested name. It is the one benign lookup outcome: pattern
// resolution treats it as "no match" and moves on. Every other lookup
// error aborts the apply.
var ErrChildNotFound = errors.New("child module not found")

// ErrEmptyPlanPath is returned when a plan entry's path pattern is the
// empty string.
var ErrEmptyPlanPath = errors.New("plan path must be non-empty")

// InvalidMeshError reports a mesh whose dimensionality is not usable for
// plan application.
type InvalidMeshError struct {
	NDim int
}

func (e *InvalidMeshError) Error() string {
	return fmt.Sprintf("plans require a 1-dimensional mesh, got %d dimensions (slice the mesh first)", e.NDim)
}

// InvalidPlanError reports a plan value of an unknown shape.
type InvalidPlanError struct {
	Plan any
}

func (e *InvalidPlanError) Error() string {
	return fmt.Sprintf("expected a Transform or a path plan, got %T", e.Plan)
}

// LookupError wraps an unexpected fault encountered while stepping into a
// named child during pattern resolution. It is distinct from the benign
// ErrChildNotFound outcome and always fatal.
type LookupError struct {
	Segment string // the segment whose lookup faulted
	Path    string // the full original pattern string
	Err     error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("looking up submodule %q in %q: %v", e.Segment, e.Path, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
