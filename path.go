// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import (
	"slices"
	"strings"
)

// breadcrumbProperties is the first segment of every field breadcrumb.
const breadcrumbProperties = "properties"

// Breadcrumb locates a node in a stream's metadata tree.
//
// The empty breadcrumb is the stream root; field breadcrumbs start with
// "properties" and nest as ("properties", a, "properties", b, ...).
type Breadcrumb []string

// IsRoot reports whether breadcrumb addresses the stream itself.
func (b Breadcrumb) IsRoot() bool {
	return len(b) == 0
}

// IsProperty reports whether breadcrumb addresses a field.
func (b Breadcrumb) IsProperty() bool {
	return len(b) > 0 && b[0] == breadcrumbProperties
}

// Equal reports whether two breadcrumbs address the same node.
func (b Breadcrumb) Equal(other Breadcrumb) bool {
	return slices.Equal(b, other)
}

// FieldPath builds the canonical match path for a field breadcrumb.
//
// The stream name is joined with every breadcrumb segment after the leading
// "properties": ("properties", "a", "properties", "b") on stream "orders"
// becomes "orders/a/properties/b".
func (b Breadcrumb) FieldPath(stream string) string {
	if len(b) <= 1 {
		return stream
	}

	return stream + "/" + strings.Join(b[1:], "/")
}
