// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/cthing/projectversion/pkg/serializer"
	ver "github.com/cthing/projectversion/pkg/version"
)

func stampCmd() *cli.Command {
	return &cli.Command{
		Name:                  "stamp",
		EnableShellCompletion: true,
		Usage:                 "Resolve the project version for the current build",
		Description: `Resolve the project version from the core version, the requested build
type, and the build environment:

  - Under CI (CTHING_CI set), the requested build type is honored and the
    build number is the build timestamp in milliseconds since the Unix Epoch.
  - On a developer machine, the build is forced to a snapshot with build
    number 0 regardless of the requested type.

Branch and commit default to the GIT_BRANCH and GIT_COMMIT environment
variables when not supplied.

The resolved version manifest can be output in JSON, YAML, or table format.

# Examples

Developer snapshot:
  pver stamp --version 1.2.3

Release build (effective only under CI):
  pver stamp --version 1.2.3 --build-type release --output version.json --format json

Pinned build metadata:
  pver stamp --version 1.2.3 --build-time 2024-05-22T23:22:36Z --branch master --commit a5b7f46`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "version",
				Aliases:  []string{"V"},
				Usage:    "Core version in major.minor.patch form (e.g. 1.2.3)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "build-type",
				Value: string(ver.BuildTypeSnapshot),
				Usage: fmt.Sprintf("Requested build type (supported values: %s)", ver.SupportedBuildTypes()),
			},
			&cli.StringFlag{
				Name:  "build-time",
				Usage: "Build timestamp in RFC 3339 format (default: now)",
			},
			&cli.StringFlag{
				Name:    "branch",
				Usage:   "Source control branch name",
				Sources: cli.EnvVars(ver.BranchEnvVar),
			},
			&cli.StringFlag{
				Name:    "commit",
				Usage:   "Source control commit hash",
				Sources: cli.EnvVars(ver.CommitEnvVar),
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			buildType, err := ver.ParseBuildType(cmd.String("build-type"))
			if err != nil {
				return err
			}

			var opts []ver.Option
			if s := cmd.String("build-time"); s != "" {
				t, err := time.Parse(time.RFC3339, s)
				if err != nil {
					return fmt.Errorf("invalid build time %q: %w", s, err)
				}
				opts = append(opts, ver.WithBuildTime(t))
			}
			if cmd.IsSet("branch") {
				opts = append(opts, ver.WithBranch(cmd.String("branch")))
			}
			if cmd.IsSet("commit") {
				opts = append(opts, ver.WithCommit(cmd.String("commit")))
			}

			pv, err := ver.New(cmd.String("version"), buildType, opts...)
			if err != nil {
				return fmt.Errorf("error resolving project version: %w", err)
			}

			slog.Info("resolved project version",
				"semanticVersion", pv.SemanticVersion(),
				"buildType", pv.BuildType(),
				"buildNumber", pv.BuildNumber())

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, newVersionManifest(pv))
		},
	}
}
