// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"os"
	"strings"
)

// Environment variables consumed by the default build environment.
const (
	// CIEnvVar marks the build as a CI build when set to a non-blank value.
	CIEnvVar = "CTHING_CI"

	// BranchEnvVar supplies the source control branch when none is given
	// explicitly.
	BranchEnvVar = "GIT_BRANCH"

	// CommitEnvVar supplies the source control commit hash when none is
	// given explicitly.
	CommitEnvVar = "GIT_COMMIT"
)

// BuildEnv abstracts the build environment signals consumed during version
// construction. Injecting an implementation keeps the value type testable
// without mutating process-wide environment variables.
type BuildEnv interface {
	// IsCI reports whether the build is running under the continuous
	// integration service.
	IsCI() bool

	// Branch returns the source control branch name, or an empty string
	// if unknown.
	Branch() string

	// Commit returns the source control commit hash, or an empty string
	// if unknown.
	Commit() string
}

// OSEnv is the default BuildEnv backed by the process environment.
type OSEnv struct{}

// IsCI reports whether CTHING_CI is set to a non-blank value.
func (OSEnv) IsCI() bool {
	return strings.TrimSpace(os.Getenv(CIEnvVar)) != ""
}

// Branch returns the value of GIT_BRANCH.
func (OSEnv) Branch() string {
	return os.Getenv(BranchEnvVar)
}

// Commit returns the value of GIT_COMMIT.
func (OSEnv) Commit() string {
	return os.Getenv(CommitEnvVar)
}

// IsDeveloperBuild reports whether the current process environment indicates
// a build taking place on a developer's machine rather than under CI.
func IsDeveloperBuild() bool {
	return IsDeveloperBuildIn(OSEnv{})
}

// IsDeveloperBuildIn reports whether the given build environment indicates a
// developer build. A nil environment counts as a developer machine.
func IsDeveloperBuildIn(env BuildEnv) bool {
	return env == nil || !env.IsCI()
}
