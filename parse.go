// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ParsePatterns parses gitignore-like pattern lines from reader.
//
// Semantics:
// - lines are stripped of surrounding whitespace
// - blank lines and "#" comments are skipped
// - "!" creates a negation pattern, compiled from the text after the "!"
// - plain lines create positive patterns
//
// A line the glob matcher cannot compile is a fatal ErrInvalidPattern; it is
// never silently skipped.
func ParsePatterns(r io.Reader) ([]Pattern, error) {
	s := bufio.NewScanner(r)
	patterns := make([]Pattern, 0, 16)

	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pattern, err := NewPattern(line)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, pattern)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return patterns, nil
}

// ParsePatternsString parses patterns from string input.
func ParsePatternsString(src string) ([]Pattern, error) {
	return ParsePatterns(strings.NewReader(src))
}

// NewPattern compiles one pattern line.
func NewPattern(line string) (Pattern, error) {
	line = strings.TrimSpace(line)
	glob := line
	negation := strings.HasPrefix(line, "!")
	if negation {
		glob = line[1:]
	}

	if glob == "" || !doublestar.ValidatePattern(glob) {
		return Pattern{}, fmt.Errorf("%w: %q", ErrInvalidPattern, line)
	}

	return Pattern{
		Line:     line,
		Negation: negation,
		glob:     glob,
	}, nil
}

// DefaultPatterns returns the pattern list used when no pattern source is
// supplied: a single "**" matching every select-able field.
func DefaultPatterns() []Pattern {
	return []Pattern{{Line: "**", glob: "**"}}
}
