// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import (
	"errors"
	"testing"
)

func TestParsePatterns(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString(`
# comment
orders/**
!orders/secret
  users/name

**
`)
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	if len(patterns) != 4 {
		t.Fatalf("len(patterns)=%d, want 4", len(patterns))
	}

	if patterns[0].Negation || patterns[0].Line != "orders/**" {
		t.Fatalf("pattern[0]=%+v", patterns[0])
	}

	if !patterns[1].Negation || patterns[1].Line != "!orders/secret" {
		t.Fatalf("pattern[1]=%+v", patterns[1])
	}

	if patterns[2].Line != "users/name" {
		t.Fatalf("pattern[2]=%+v, whitespace must be stripped", patterns[2])
	}

	if patterns[3].Line != "**" {
		t.Fatalf("pattern[3]=%+v", patterns[3])
	}
}

func TestParsePatternsInvalid(t *testing.T) {
	t.Parallel()

	_, err := ParsePatternsString("orders/**\na[\n")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern", err)
	}
}

func TestNewPatternBareNegation(t *testing.T) {
	t.Parallel()

	if _, err := NewPattern("!"); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern for bare negation", err)
	}
}

func TestNewPatternNegationMatchesRemainder(t *testing.T) {
	t.Parallel()

	pattern, err := NewPattern("!a/secret")
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}

	if !pattern.Match("a/secret") {
		t.Fatalf("negation pattern must match its remainder text")
	}

	if pattern.Match("!a/secret") {
		t.Fatalf("negation token must not be part of the compiled glob")
	}
}

func TestDefaultPatterns(t *testing.T) {
	t.Parallel()

	patterns := DefaultPatterns()
	if len(patterns) != 1 || patterns[0].Line != "**" {
		t.Fatalf("unexpected default patterns: %+v", patterns)
	}

	for _, path := range []string{"orders", "orders/id", "orders/details/properties/note"} {
		if _, selected := MatchPath(patterns, path); !selected {
			t.Fatalf("default pattern must match %q", path)
		}
	}
}
