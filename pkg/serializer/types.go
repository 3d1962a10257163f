// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package serializer

import "context"

// Format represents the output format type.
type Format string

const (
	// FormatJSON outputs data in JSON format.
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format.
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format.
	FormatTable Format = "table"
)

// IsUnknown reports whether the format is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// Serializer is an interface for serializing document data. Implementations
// serialize to various formats such as JSON, YAML, or tabular text.
//
// The context parameter is used for cancellation and timeouts, for
// consistency across implementations that perform I/O.
type Serializer interface {
	Serialize(ctx context.Context, doc any) error
}

// Closer is an optional interface that Serializers can implement if they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
