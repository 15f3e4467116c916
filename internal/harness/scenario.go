package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines a CLI conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name (testdata/golden/{name}.golden).
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Args are the command-line arguments passed to the root command.
	// Empty args exercise the bare entry point.
	Args []string `yaml:"args,omitempty"`

	// WantExit is the expected exit code after argument mapping.
	WantExit int `yaml:"want_exit"`
}

// LoadScenario reads and validates a scenario from a YAML file.
// Unknown fields are rejected so stale scenario files fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	return &s, nil
}

// LoadScenarios loads every *.yaml scenario in dir, sorted by file name
// for deterministic test ordering.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("scenario name %q used by both %s and %s", s.Name, prev, p)
		}
		seen[s.Name] = p
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
