// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

// Package header provides the resource envelope for serialized documents
// produced by the project version tooling. Every document carries a Kind,
// an API version, and metadata (creation timestamp, tool version, and a
// unique id) so that consumers can identify and trace what they are reading.
package header
