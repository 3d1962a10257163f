// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/cthing/projectversion/pkg/header"
	"github.com/cthing/projectversion/pkg/serializer"
)

// comparisonResult describes the ordering of two versions.
type comparisonResult struct {
	// Left and Right are the semantic versions being compared.
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`

	// Order is -1, 0, or 1 as left is older than, ordered equal to, or
	// newer than right.
	Order int `json:"order" yaml:"order"`

	// Relation is the human-readable form of Order: "older", "equal",
	// or "newer".
	Relation string `json:"relation" yaml:"relation"`

	// Equal reports value equality, which is stricter than ordering:
	// two releases of the same core version always order equal but are
	// only Equal when their build numbers also match.
	Equal bool `json:"equal" yaml:"equal"`
}

type comparisonManifest struct {
	Header *header.Header   `json:"header" yaml:"header"`
	Result comparisonResult `json:"result" yaml:"result"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two project versions",
		ArgsUsage:             "LEFT RIGHT",
		Description: `Compare two project versions. Each argument is either a core version
string (major.minor.patch) or the path of a version manifest previously
emitted by "pver stamp".

Ordering follows the versioning scheme: major, minor, and patch compare
numerically; for an equal core version a release is newer than any
snapshot, two releases are always ordered equal, and snapshots order by
build time.

# Examples

  pver compare 1.2.3 2.0.0
  pver compare version-old.json version-new.json
  pver compare 1.2.3 version.yaml --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			args := cmd.Args()
			if args.Len() != 2 {
				return fmt.Errorf("expected exactly two versions to compare, got %d", args.Len())
			}

			left, err := resolveVersionArg(args.Get(0))
			if err != nil {
				return fmt.Errorf("error reading left version %q: %w", args.Get(0), err)
			}
			right, err := resolveVersionArg(args.Get(1))
			if err != nil {
				return fmt.Errorf("error reading right version %q: %w", args.Get(1), err)
			}

			order := left.Compare(right)
			relation := "equal"
			switch {
			case order < 0:
				relation = "older"
			case order > 0:
				relation = "newer"
			}

			h := header.New()
			h.Init(header.KindComparisonResult, version)
			manifest := &comparisonManifest{
				Header: h,
				Result: comparisonResult{
					Left:     left.SemanticVersion(),
					Right:    right.SemanticVersion(),
					Order:    order,
					Relation: relation,
					Equal:    left.Equal(right),
				},
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, manifest)
		},
	}
}
