package schema

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load decodes and validates a tree definition from YAML.
func Load(r io.Reader) (*ModuleSpec, error) {
	var spec ModuleSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("failed to decode module tree: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadFile reads and validates a tree definition from a YAML file.
func LoadFile(path string) (*ModuleSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open module tree %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// FromMap decodes a tree definition from a loose map, as produced by a
// host's own configuration layer. Keys follow the same names as the YAML
// form.
func FromMap(data map[string]any) (*ModuleSpec, error) {
	var spec ModuleSpec
	if err := mapstructure.Decode(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode module tree: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
