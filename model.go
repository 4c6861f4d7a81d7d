// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

// Inclusion values and metadata keys used by Singer catalogs.
const (
	inclusionAvailable = "available"
	inclusionAutomatic = "automatic"

	metaInclusion = "inclusion"
	metaSelected  = "selected"
)

// Field is one select-able catalog field flattened for matching.
type Field struct {
	// Stream is the owning stream name.
	Stream string
	// Breadcrumb locates the field inside the stream metadata tree.
	Breadcrumb Breadcrumb
	// Path is the canonical slash-separated match path.
	Path string
}

// Pattern is one compiled pattern line.
type Pattern struct {
	// Line is the source pattern line with surrounding whitespace stripped.
	// Negation patterns keep their leading "!".
	Line string
	// Negation reports whether the line started with "!".
	Negation bool
	// glob is the matching text without the negation token.
	glob string
}

// Result is the outcome of matching a pattern list against one catalog.
type Result struct {
	// Matched holds fields with final polarity true, in walk order.
	Matched []Field
	// Unmatched holds fields with final polarity false, in walk order.
	Unmatched []Field
	// Unused holds patterns that produced no field's final polarity,
	// in pattern order.
	Unused []Pattern
}
