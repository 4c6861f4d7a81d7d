// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import "strings"

// StreamPatterns converts stream names to positive patterns selecting every
// field of each stream.
//
// Accepted name forms:
//   - "orders"
//   - "orders/"
//   - "/orders"
//
// Empty values are skipped. Returned patterns are normalized to "name/**"
// form and preserve input order.
func StreamPatterns(names []string) []Pattern {
	patterns := make([]Pattern, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		name = strings.Trim(name, "/")
		if name == "" {
			continue
		}

		glob := name + "/**"
		patterns = append(patterns, Pattern{
			Line: glob,
			glob: glob,
		})
	}

	return patterns
}
