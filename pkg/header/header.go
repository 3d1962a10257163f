// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"time"

	"github.com/google/uuid"
)

// APIVersion identifies the current schema version for serialized documents.
const APIVersion = "cthing.dev/v1"

// Kind represents the type of a serialized resource.
type Kind string

// Valid Kind constants for all resource types.
const (
	KindProjectVersion   Kind = "ProjectVersion"
	KindComparisonResult Kind = "ComparisonResult"
	KindBuildEnvironment Kind = "BuildEnvironment"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindProjectVersion, KindComparisonResult, KindBuildEnvironment:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for serialized
// resources. It follows Kubernetes-style resource conventions with Kind,
// APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the resource.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the resource.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the resource.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// WithMetadata returns an Option that adds a metadata key-value pair to the
// Header. If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// New creates a new Header instance with the provided functional options.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Init initializes the Header with the specified kind and tool version. It
// sets Kind and APIVersion and populates Metadata with a creation
// timestamp, a unique id, and the tool version.
func (h *Header) Init(kind Kind, toolVersion string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"id":        uuid.NewString(),
	}
	if toolVersion != "" {
		h.Metadata["version"] = toolVersion
	}
}
