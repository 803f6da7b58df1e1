package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/typeshift/internal/convert"
)

// Case defines one conformance case.
type Case struct {
	// Name uniquely identifies this case and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this case pins down.
	Description string `yaml:"description"`

	// Direction is "typed" or "untyped".
	Direction string `yaml:"direction"`

	// Input is the source text to convert.
	Input string `yaml:"input"`

	// Expect holds the output checks.
	Expect Expect `yaml:"expect"`

	// Roundtrip also checks that converting the output the other way and
	// back reproduces it.
	Roundtrip bool `yaml:"roundtrip,omitempty"`
}

// Expect specifies expected conversion behavior.
type Expect struct {
	// Equals is the exact expected output. Nil skips the check.
	Equals *string `yaml:"equals,omitempty"`

	// Contains lists substrings the output must contain.
	Contains []string `yaml:"contains,omitempty"`

	// NotContains lists substrings the output must not contain.
	NotContains []string `yaml:"not_contains,omitempty"`

	// Error is the stage the conversion must fail in. Empty means the
	// conversion must succeed.
	Error string `yaml:"error,omitempty"`
}

// LoadCase reads and parses a case YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	return ParseCase(data)
}

// ParseCase parses case YAML with strict field checking.
func ParseCase(data []byte) (*Case, error) {
	var c Case
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateCase(&c); err != nil {
		return nil, fmt.Errorf("invalid case: %w", err)
	}
	return &c, nil
}

// FindCases returns the .yaml and .yml files under dir whose base name
// (without extension) matches the glob filter, in lexical order. An empty
// filter matches everything.
func FindCases(dir, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// validateCase checks that required fields are present and valid.
func validateCase(c *Case) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}

	if c.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, err := convert.ParseDirection(c.Direction); err != nil {
		return fmt.Errorf("direction: %w", err)
	}

	switch convert.Stage(c.Expect.Error) {
	case "":
	case convert.StageParse, convert.StagePrint:
		if c.Expect.Equals != nil || len(c.Expect.Contains) > 0 || len(c.Expect.NotContains) > 0 {
			return fmt.Errorf("expect: output checks cannot be combined with error")
		}
		if c.Roundtrip {
			return fmt.Errorf("roundtrip cannot be combined with expect.error")
		}
	default:
		return fmt.Errorf("expect.error: unknown stage %q (want parse or print)", c.Expect.Error)
	}

	for i, s := range c.Expect.Contains {
		if s == "" {
			return fmt.Errorf("expect.contains[%d]: empty string", i)
		}
	}
	for i, s := range c.Expect.NotContains {
		if s == "" {
			return fmt.Errorf("expect.not_contains[%d]: empty string", i)
		}
	}

	return nil
}
