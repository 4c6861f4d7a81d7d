// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import (
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Match reports whether the compiled pattern text matches path.
//
// Negation is not applied here; it is interpreted by MatchPath.
func (p Pattern) Match(path string) bool {
	return doublestar.MatchUnvalidated(p.glob, path)
}

// MatchPath evaluates ordered patterns against one path.
//
// Returns the index of the pattern that produced the final polarity (-1 when
// none did) and the final polarity.
//
// Decision policy (polarity-gated, not plain last-match-wins):
// the state starts unselected; a pattern applies only when its glob matches
// AND its negation flag equals the current state, and then flips the state.
// A pattern whose gate fails never counts as matching, even when its glob
// matched the path.
func MatchPath(patterns []Pattern, path string) (int, bool) {
	matching := -1
	selected := false

	for i := range patterns {
		if patterns[i].Match(path) && patterns[i].Negation == selected {
			matching = i
			selected = !selected
		}
	}

	return matching, selected
}

// MatchCatalog partitions every select-able catalog field by the ordered
// pattern list.
//
// Matched and unmatched keep AvailableFields order; unused keeps pattern
// order. Output is deterministic for a fixed catalog and pattern list.
func MatchCatalog(patterns []Pattern, catalog *Catalog) *Result {
	used := make([]bool, len(patterns))
	res := &Result{}

	for _, field := range AvailableFields(catalog) {
		matching, selected := MatchPath(patterns, field.Path)

		if selected {
			res.Matched = append(res.Matched, field)
		} else {
			res.Unmatched = append(res.Unmatched, field)
		}

		if matching >= 0 {
			used[matching] = true
		}
	}

	for i := range patterns {
		if !used[i] {
			res.Unused = append(res.Unused, patterns[i])
		}
	}

	return res
}

// CheckUnused returns an UnusedPatternsError when any pattern matched no
// field, nil otherwise.
//
// Duplicate pattern lines are reported once.
func (r *Result) CheckUnused() error {
	if len(r.Unused) == 0 {
		return nil
	}

	lines := make([]string, 0, len(r.Unused))
	for _, pattern := range r.Unused {
		lines = append(lines, pattern.Line)
	}

	slices.Sort(lines)

	return &UnusedPatternsError{Patterns: slices.Compact(lines)}
}
