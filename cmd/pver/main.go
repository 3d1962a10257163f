// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

// Command pver resolves, compares, and reports project versions for build
// tooling.
package main

import (
	"github.com/cthing/projectversion/pkg/cli"
)

func main() {
	cli.Execute()
}
