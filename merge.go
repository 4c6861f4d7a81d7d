// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

// MergePatterns merges pattern slices preserving input order.
func MergePatterns(patternSets ...[]Pattern) []Pattern {
	total := 0
	for _, set := range patternSets {
		total += len(set)
	}

	out := make([]Pattern, 0, total)
	for _, set := range patternSets {
		out = append(out, set...)
	}

	return out
}
