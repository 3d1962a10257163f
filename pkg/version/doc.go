// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

// Package version provides the ProjectVersion value type: a semantic version
// combined with build provenance metadata (build type, build timestamp, build
// number, and source control branch/commit).
//
// # Versioning Scheme
//
// The version a build receives depends on both the requested build type and
// whether the build is running under the continuous integration service
// (signaled by the CTHING_CI environment variable):
//
//	Build Environment   Requested   Effective   Semantic Version
//	-----------------   ---------   ---------   ----------------
//	CI build            snapshot    snapshot    n.n.n-t (t = ms since Unix Epoch)
//	developer build     snapshot    snapshot    n.n.n-0
//	CI build            release     release     n.n.n
//	developer build     release     snapshot    n.n.n-0
//
// A release requested outside CI is deliberately downgraded to a snapshot
// rather than rejected, so developer builds can run the release workflow
// end to end without ever producing release-versioned artifacts.
//
// # Usage
//
// Construct a version for the current build:
//
//	pv, err := version.New("1.2.3", version.BuildTypeRelease)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(pv) // Output: 1.2.3-0 (on a developer machine)
//
// Options make the implicit inputs explicit, which is how tests and build
// tooling pin the environment, timestamp, and source control state:
//
//	pv, err := version.New("1.2.3", version.BuildTypeSnapshot,
//	    version.WithBuildTime(buildTime),
//	    version.WithBranch("master"),
//	    version.WithCommit("a5b7f46"),
//	    version.WithEnvironment(env),
//	)
//
// An option that is not supplied means "defaulted": the build time defaults
// to the wall clock, and branch/commit default to the GIT_BRANCH and
// GIT_COMMIT environment variables. A branch or commit that is supplied but
// blank normalizes to "unknown" without consulting the environment.
//
// # Ordering and Equality
//
// Compare orders by major, minor, patch, then build kind (release sorts
// above snapshot); two releases of the same core version always compare
// equal regardless of when they were built, while snapshots tie-break on
// build time. Equal compares the numeric components, build number, and
// effective build type only; branch, commit, and build date never affect
// equality. Hash is consistent with Equal.
//
// # Serialization
//
// ProjectVersion implements encoding.BinaryMarshaler/BinaryUnmarshaler
// (deterministic CBOR) as well as JSON and YAML marshalling through the
// exported Record wire form. Decoding restores every stored field exactly,
// including those excluded from equality, and never re-derives from the
// decoding host's environment.
package version
