package schema

import "fmt"

// ValidationError represents a single tree-definition failure.
type ValidationError struct {
	Path   string // dotted path of the offending module ("" for the root)
	Reason string // human-readable reason for failure
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("module tree root: %s", e.Reason)
	}
	return fmt.Sprintf("module %q: %s", e.Path, e.Reason)
}
