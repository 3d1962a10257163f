// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"strings"
)

// BuildType specifies whether a build produces snapshot or release artifacts.
type BuildType string

const (
	// BuildTypeSnapshot indicates that the build produces pre-release artifacts.
	BuildTypeSnapshot BuildType = "snapshot"

	// BuildTypeRelease indicates that the build produces release artifacts.
	BuildTypeRelease BuildType = "release"
)

// String returns the string representation of the BuildType.
func (b BuildType) String() string {
	return string(b)
}

// IsValid checks if the BuildType is one of the recognized build types.
func (b BuildType) IsValid() bool {
	switch b {
	case BuildTypeSnapshot, BuildTypeRelease:
		return true
	default:
		return false
	}
}

// ParseBuildType converts a string into a BuildType. Matching is
// case-insensitive and surrounding whitespace is ignored.
func ParseBuildType(s string) (BuildType, error) {
	bt := BuildType(strings.ToLower(strings.TrimSpace(s)))
	if !bt.IsValid() {
		return "", fmt.Errorf("invalid build type: %q (supported values: %s)", s, SupportedBuildTypes())
	}
	return bt, nil
}

// SupportedBuildTypes returns the supported build type values for use in
// help text and error messages.
func SupportedBuildTypes() string {
	return fmt.Sprintf("%s, %s", BuildTypeSnapshot, BuildTypeRelease)
}

// MarshalText implements encoding.TextMarshaler.
func (b BuildType) MarshalText() ([]byte, error) {
	return []byte(b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BuildType) UnmarshalText(text []byte) error {
	bt, err := ParseBuildType(string(text))
	if err != nil {
		return err
	}
	*b = bt
	return nil
}
