// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Selection is a YAML selection file: patterns plus run options.
//
// Example:
//
//	patterns:
//	  - orders/**
//	  - "!orders/secret"
//	ignore_unused: true
type Selection struct {
	// Patterns holds pattern lines in application order.
	Patterns []string `yaml:"patterns"`
	// IgnoreUnused suppresses the unused-pattern check.
	IgnoreUnused bool `yaml:"ignore_unused,omitempty"`
}

// Compile compiles the selection pattern lines.
//
// Lines follow ParsePatterns semantics, so comments and blank entries are
// skipped here too.
func (s *Selection) Compile() ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(s.Patterns))
	for _, line := range s.Patterns {
		parsed, err := ParsePatternsString(line)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, parsed...)
	}

	return patterns, nil
}

// LoadPatternsFile reads and parses patterns from a file.
func LoadPatternsFile(path string) ([]Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns file: %w", err)
	}
	defer func() { _ = f.Close() }()

	patterns, err := ParsePatterns(f)
	if err != nil {
		return nil, fmt.Errorf("parse patterns file: %w", err)
	}

	return patterns, nil
}

// LoadSelectionFile reads and parses a YAML selection file.
func LoadSelectionFile(path string) (*Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read selection file: %w", err)
	}

	selection := &Selection{}
	if err := yaml.Unmarshal(data, selection); err != nil {
		return nil, fmt.Errorf("parse selection file: %w", err)
	}

	return selection, nil
}

// ParseCatalog parses a Singer catalog JSON document from reader.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	catalog := &Catalog{}
	if err := json.NewDecoder(r).Decode(catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return catalog, nil
}

// LoadCatalogFile reads and parses a Singer catalog JSON file.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseCatalog(f)
}
