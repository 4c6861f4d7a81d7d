// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package fieldmatch

import "encoding/json"

// Catalog is a Singer catalog document.
type Catalog struct {
	// Streams holds catalog streams in document order.
	Streams []*Stream `json:"streams"`
}

// Stream is one catalog stream with its selection metadata.
//
// Schema is kept as raw JSON: this package never interprets it and must not
// reshape it on round-trip.
type Stream struct {
	// TapStreamID is the unique tap-side stream identifier.
	TapStreamID string `json:"tap_stream_id,omitempty"`
	// Name is the stream name used as the first match path segment.
	Name string `json:"stream"`
	// Schema is the untouched JSON schema of the stream.
	Schema json.RawMessage `json:"schema,omitempty"`
	// Metadata holds breadcrumb-addressed metadata entries in document order.
	Metadata []MetadataEntry `json:"metadata"`
	// KeyProperties lists primary key fields.
	KeyProperties []string `json:"key_properties,omitempty"`
	// ReplicationKey is the incremental replication bookmark field.
	ReplicationKey string `json:"replication_key,omitempty"`
	// ReplicationMethod is the tap replication method.
	ReplicationMethod string `json:"replication_method,omitempty"`
}

// MetadataEntry is one breadcrumb-addressed metadata record.
type MetadataEntry struct {
	// Breadcrumb addresses the stream root (empty) or a field.
	Breadcrumb Breadcrumb `json:"breadcrumb"`
	// Properties holds the metadata of the addressed node.
	Properties map[string]any `json:"metadata"`
}

// MetadataValue returns the metadata value under key at breadcrumb.
//
// Missing breadcrumbs and missing keys report ok=false; malformed streams
// never panic.
func (s *Stream) MetadataValue(breadcrumb Breadcrumb, key string) (any, bool) {
	for i := range s.Metadata {
		if !s.Metadata[i].Breadcrumb.Equal(breadcrumb) {
			continue
		}

		value, ok := s.Metadata[i].Properties[key]
		return value, ok
	}

	return nil, false
}

// WriteMetadata sets key=value at breadcrumb.
//
// An existing entry is updated in place; a missing breadcrumb gets a new
// entry appended. Entry order is otherwise preserved, so repeated writes of
// the same value keep the serialized document identical.
func (s *Stream) WriteMetadata(breadcrumb Breadcrumb, key string, value any) {
	for i := range s.Metadata {
		if !s.Metadata[i].Breadcrumb.Equal(breadcrumb) {
			continue
		}

		if s.Metadata[i].Properties == nil {
			s.Metadata[i].Properties = make(map[string]any, 1)
		}

		s.Metadata[i].Properties[key] = value
		return
	}

	if breadcrumb == nil {
		// Root breadcrumb must serialize as [], not null.
		breadcrumb = Breadcrumb{}
	}

	s.Metadata = append(s.Metadata, MetadataEntry{
		Breadcrumb: breadcrumb,
		Properties: map[string]any{key: value},
	})
}

// RootInclusion returns the stream root "inclusion" value, empty when unset.
func (s *Stream) RootInclusion() string {
	value, ok := s.MetadataValue(Breadcrumb{}, metaInclusion)
	if !ok {
		return ""
	}

	inclusion, _ := value.(string)
	return inclusion
}
