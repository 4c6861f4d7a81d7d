// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import (
	"errors"
	"testing"
)

func mustPatterns(t *testing.T, lines ...string) []Pattern {
	t.Helper()

	patterns := make([]Pattern, 0, len(lines))
	for _, line := range lines {
		pattern, err := NewPattern(line)
		if err != nil {
			t.Fatalf("NewPattern(%q): %v", line, err)
		}

		patterns = append(patterns, pattern)
	}

	return patterns
}

func TestMatchPathToggle(t *testing.T) {
	t.Parallel()

	// Positive pattern flips unselected to selected, negation flips back,
	// and a later positive flips once more. The pattern that produced the
	// final polarity is the third one, not the first.
	patterns := mustPatterns(t, "a/*", "!a/secret", "a/*")

	matching, selected := MatchPath(patterns, "a/secret")
	if !selected {
		t.Fatalf("a/secret must end selected")
	}

	if matching != 2 {
		t.Fatalf("matching=%d, want 2 (last toggling pattern)", matching)
	}
}

func TestMatchPathNoPatterns(t *testing.T) {
	t.Parallel()

	matching, selected := MatchPath(nil, "a/b")
	if matching != -1 || selected {
		t.Fatalf("matching=%d selected=%v, want -1 false", matching, selected)
	}
}

func TestMatchPathNoMatch(t *testing.T) {
	t.Parallel()

	patterns := mustPatterns(t, "x/*")

	matching, selected := MatchPath(patterns, "a/b")
	if matching != -1 || selected {
		t.Fatalf("matching=%d selected=%v, want -1 false", matching, selected)
	}
}

func TestMatchPathPositiveGate(t *testing.T) {
	t.Parallel()

	// Second positive pattern is gated: the state is already selected, so it
	// neither flips nor becomes the matching pattern.
	patterns := mustPatterns(t, "a/*", "a/b")

	matching, selected := MatchPath(patterns, "a/b")
	if !selected {
		t.Fatalf("a/b must end selected")
	}

	if matching != 0 {
		t.Fatalf("matching=%d, want 0 (gated pattern must not take over)", matching)
	}
}

func TestMatchPathNegationGate(t *testing.T) {
	t.Parallel()

	// A negation pattern on an unselected path is gated even when its glob
	// matches: nothing applies and the path stays unselected.
	patterns := mustPatterns(t, "!a/b")

	matching, selected := MatchPath(patterns, "a/b")
	if matching != -1 || selected {
		t.Fatalf("matching=%d selected=%v, want -1 false", matching, selected)
	}
}

func TestMatchCatalogPartition(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	res := MatchCatalog(mustPatterns(t, "orders/**"), catalog)

	wantMatched := []string{
		"orders/id",
		"orders/amount",
		"orders/secret",
		"orders/details/properties/note",
	}
	wantUnmatched := []string{"users/name"}

	gotMatched := fieldPaths(res.Matched)
	gotUnmatched := fieldPaths(res.Unmatched)

	if len(gotMatched) != len(wantMatched) {
		t.Fatalf("matched=%v, want %v", gotMatched, wantMatched)
	}

	for i := range wantMatched {
		if gotMatched[i] != wantMatched[i] {
			t.Fatalf("matched[%d]=%q, want %q", i, gotMatched[i], wantMatched[i])
		}
	}

	if len(gotUnmatched) != 1 || gotUnmatched[0] != wantUnmatched[0] {
		t.Fatalf("unmatched=%v, want %v", gotUnmatched, wantUnmatched)
	}

	if total := len(res.Matched) + len(res.Unmatched); total != len(AvailableFields(catalog)) {
		t.Fatalf("partition lost fields: %d", total)
	}
}

func TestMatchCatalogUnused(t *testing.T) {
	t.Parallel()

	res := MatchCatalog(mustPatterns(t, "orders/*", "payments/*"), testCatalog())

	err := res.CheckUnused()
	if err == nil {
		t.Fatalf("CheckUnused must fail for pattern matching no field")
	}

	var unusedErr *UnusedPatternsError
	if !errors.As(err, &unusedErr) {
		t.Fatalf("err=%T, want *UnusedPatternsError", err)
	}

	if len(unusedErr.Patterns) != 1 || unusedErr.Patterns[0] != "payments/*" {
		t.Fatalf("unused=%v, want [payments/*]", unusedErr.Patterns)
	}
}

func TestMatchCatalogUnusedGatedMatch(t *testing.T) {
	t.Parallel()

	// The negation glob matches orders/secret syntactically, but its gate
	// never opens (the path is unselected when it runs), so the pattern
	// stays unused.
	res := MatchCatalog(mustPatterns(t, "!orders/secret", "users/*"), testCatalog())

	if len(res.Unused) != 1 || res.Unused[0].Line != "!orders/secret" {
		t.Fatalf("unused=%+v, want the gated negation pattern", res.Unused)
	}
}

func TestCheckUnusedSortedUnique(t *testing.T) {
	t.Parallel()

	res := MatchCatalog(
		mustPatterns(t, "z/*", "payments/*", "z/*", "orders/**"),
		testCatalog(),
	)

	var unusedErr *UnusedPatternsError
	if !errors.As(res.CheckUnused(), &unusedErr) {
		t.Fatalf("want *UnusedPatternsError")
	}

	if len(unusedErr.Patterns) != 2 ||
		unusedErr.Patterns[0] != "payments/*" ||
		unusedErr.Patterns[1] != "z/*" {
		t.Fatalf("unused=%v, want sorted unique [payments/* z/*]", unusedErr.Patterns)
	}
}

func TestCheckUnusedAllUsed(t *testing.T) {
	t.Parallel()

	res := MatchCatalog(mustPatterns(t, "**"), testCatalog())
	if err := res.CheckUnused(); err != nil {
		t.Fatalf("CheckUnused: %v", err)
	}

	if len(res.Unmatched) != 0 {
		t.Fatalf("unmatched=%v, ** must match every field", fieldPaths(res.Unmatched))
	}
}
