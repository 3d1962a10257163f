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
	ver "github.com/cthing/projectversion/pkg/version"
)

// buildEnvReport is the detected state of the build environment.
type buildEnvReport struct {
	DeveloperBuild bool   `json:"developerBuild" yaml:"developerBuild"`
	CIBuild        bool   `json:"ciBuild" yaml:"ciBuild"`
	Branch         string `json:"branch" yaml:"branch"`
	Commit         string `json:"commit" yaml:"commit"`
}

type buildEnvManifest struct {
	Header      *header.Header `json:"header" yaml:"header"`
	Environment buildEnvReport `json:"environment" yaml:"environment"`
}

func envCmd() *cli.Command {
	return &cli.Command{
		Name:                  "env",
		EnableShellCompletion: true,
		Usage:                 "Report the detected build environment",
		Description: fmt.Sprintf(`Report the build environment signals that drive version resolution:

  - %s marks a CI build when set to a non-blank value
  - %s supplies the source control branch
  - %s supplies the source control commit hash

Branch and commit report "unknown" when the variables are unset or blank.`,
			ver.CIEnvVar, ver.BranchEnvVar, ver.CommitEnvVar),
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			env := ver.OSEnv{}
			report := buildEnvReport{
				DeveloperBuild: ver.IsDeveloperBuild(),
				CIBuild:        env.IsCI(),
				Branch:         env.Branch(),
				Commit:         env.Commit(),
			}
			if report.Branch == "" {
				report.Branch = "unknown"
			}
			if report.Commit == "" {
				report.Commit = "unknown"
			}

			h := header.New()
			h.Init(header.KindBuildEnvironment, version)
			manifest := &buildEnvManifest{
				Header:      h,
				Environment: report,
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
