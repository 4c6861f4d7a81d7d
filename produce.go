// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import (
	"encoding/json"
	"fmt"
	"io"
)

// ProduceMatched writes matched field paths, one per line, in match order.
func ProduceMatched(w io.Writer, res *Result) error {
	return writePaths(w, res.Matched)
}

// ProduceUnmatched writes unmatched field paths, one per line, in walk order.
func ProduceUnmatched(w io.Writer, res *Result) error {
	return writePaths(w, res.Unmatched)
}

// ProduceCatalog writes the full catalog as indented JSON with selection
// state annotated into stream metadata.
//
// Every matched field breadcrumb gets selected=true. The stream root gets an
// explicit selected flag (true when the stream had at least one matched
// field) only when the root inclusion is "available"; other streams keep
// their root metadata untouched. Unmatched fields are never written to, so
// re-running the producer on its own output changes nothing.
func ProduceCatalog(w io.Writer, catalog *Catalog, res *Result) error {
	byStream := make(map[string][]Field, len(catalog.Streams))
	for _, stream := range catalog.Streams {
		if _, ok := byStream[stream.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateStream, stream.Name)
		}

		byStream[stream.Name] = nil
	}

	for _, field := range res.Matched {
		byStream[field.Stream] = append(byStream[field.Stream], field)
	}

	for _, stream := range catalog.Streams {
		matches := byStream[stream.Name]
		for _, field := range matches {
			stream.WriteMetadata(field.Breadcrumb, metaSelected, true)
		}

		if stream.RootInclusion() == inclusionAvailable {
			stream.WriteMetadata(Breadcrumb{}, metaSelected, len(matches) > 0)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(catalog)
}

// writePaths writes field paths line by line.
func writePaths(w io.Writer, fields []Field) error {
	for _, field := range fields {
		if _, err := io.WriteString(w, field.Path+"\n"); err != nil {
			return fmt.Errorf("write path: %w", err)
		}
	}

	return nil
}
