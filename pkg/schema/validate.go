package schema

import (
	"fmt"
	"strings"
)

// Validate checks the spec tree: every module needs a name, names may not
// contain the pattern separator "." or the wildcard token "*", and sibling
// names must be unique.
func (s *ModuleSpec) Validate() error {
	return s.validate("")
}

func (s *ModuleSpec) validate(parentPath string) error {
	if s.Name == "" {
		return &ValidationError{Path: parentPath, Reason: "missing name"}
	}
	path := s.Name
	if parentPath != "" {
		path = parentPath + "." + s.Name
	}

	if strings.Contains(s.Name, ".") {
		return &ValidationError{Path: path, Reason: "name must not contain '.'"}
	}
	if strings.Contains(s.Name, "*") {
		return &ValidationError{Path: path, Reason: "name must not contain '*'"}
	}

	seen := make(map[string]bool, len(s.Children))
	for i := range s.Children {
		child := &s.Children[i]
		if child.Name != "" {
			if seen[child.Name] {
				return &ValidationError{Path: path, Reason: fmt.Sprintf("duplicate child name %q", child.Name)}
			}
			seen[child.Name] = true
		}
		if err := child.validate(path); err != nil {
			return err
		}
	}
	return nil
}
