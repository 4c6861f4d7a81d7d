// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

// AvailableFields flattens every select-able field of the catalog.
//
// A field is select-able when its breadcrumb addresses a property and its
// "inclusion" is "available". "automatic" fields become select-able only
// when the stream root inclusion is itself "available": such a stream is
// optional, and matching any of its fields is what selects the stream along
// with its automatic fields.
//
// Order is catalog stream order, then metadata entry order. Streams missing
// expected metadata simply contribute no fields.
func AvailableFields(catalog *Catalog) []Field {
	var fields []Field

	for _, stream := range catalog.Streams {
		matchAutomatic := stream.RootInclusion() == inclusionAvailable

		for i := range stream.Metadata {
			breadcrumb := stream.Metadata[i].Breadcrumb
			if !breadcrumb.IsProperty() {
				continue
			}

			inclusion, _ := stream.Metadata[i].Properties[metaInclusion].(string)
			if inclusion != inclusionAvailable &&
				!(matchAutomatic && inclusion == inclusionAutomatic) {
				continue
			}

			fields = append(fields, Field{
				Stream:     stream.Name,
				Breadcrumb: breadcrumb,
				Path:       breadcrumb.FieldPath(stream.Name),
			})
		}
	}

	return fields
}
