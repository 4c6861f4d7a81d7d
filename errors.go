// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import (
	"errors"
	"strings"
)

// Sentinel errors for fieldmatch operations.
var (
	// ErrInvalidPattern indicates a pattern line the glob matcher rejects.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrDuplicateStream indicates a catalog with repeated stream names.
	ErrDuplicateStream = errors.New("duplicate stream name")
)

// UnusedPatternsError reports patterns that matched no field.
//
// It is returned by Result.CheckUnused and usually means a typo or a stale
// line in the pattern source.
type UnusedPatternsError struct {
	// Patterns holds the sorted unique unused pattern lines.
	Patterns []string
}

// Error implements the error interface.
func (e *UnusedPatternsError) Error() string {
	return "some pattern(s) matched no fields: " + strings.Join(e.Patterns, ", ")
}
