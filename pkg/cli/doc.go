// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the command-line interface for the pver project
// version tool.
//
// # Commands
//
// stamp - Resolve the version for the current build:
//
//	pver stamp --version 1.2.3 --build-type release [--output FILE] [--format yaml|json|table]
//
// Constructs a ProjectVersion from the supplied core version and build
// type, applying the CI, branch, and commit signals from the build
// environment, and emits a version manifest. Output defaults to stdout in
// YAML format.
//
// compare - Compare two versions:
//
//	pver compare 1.2.3 2.0.0
//	pver compare old.json new.json
//
// Each argument is either a core version string or the path to a
// previously emitted version manifest. Prints the ordering relation.
//
// env - Report the detected build environment:
//
//	pver env
//
// Shows whether the current process is a developer or CI build and the
// branch/commit the environment supplies.
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: yaml, json, table (default: yaml)
//	--log-level      Log level: debug, info, warn, error (default: info)
package cli
