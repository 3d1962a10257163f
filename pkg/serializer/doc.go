// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

// Package serializer provides utilities for serializing data to various
// formats.
//
// The package supports three output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, data); err != nil {
//		log.Fatal(err)
//	}
//
// Reading supports JSON and YAML with format detection from file
// extensions; the table format is write-only.
package serializer
