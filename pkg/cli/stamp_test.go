// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cthing/projectversion/pkg/header"
	"github.com/cthing/projectversion/pkg/serializer"
	ver "github.com/cthing/projectversion/pkg/version"
)

func TestStampDeveloperBuild(t *testing.T) {
	t.Setenv(ver.CIEnvVar, "")
	t.Setenv(ver.BranchEnvVar, "")
	t.Setenv(ver.CommitEnvVar, "")

	outFile := filepath.Join(t.TempDir(), "version.json")

	err := rootCmd().Run(context.Background(), []string{
		"pver", "stamp",
		"--version", "1.2.3",
		"--output", outFile,
		"--format", "json",
	})
	require.NoError(t, err)

	manifest, err := serializer.FromFile[versionManifest](outFile)
	require.NoError(t, err)

	require.NotNil(t, manifest.Header)
	assert.Equal(t, header.KindProjectVersion, manifest.Header.Kind)
	assert.Equal(t, header.APIVersion, manifest.Header.APIVersion)

	assert.Equal(t, "1.2.3-0", manifest.Version.SemanticVersion)
	assert.Equal(t, "0", manifest.Version.BuildNumber)
	assert.Equal(t, ver.BuildTypeSnapshot, manifest.Version.BuildType)
	assert.Equal(t, "unknown", manifest.Version.Branch)
	assert.Equal(t, "unknown", manifest.Version.Commit)
}

func TestStampCIRelease(t *testing.T) {
	t.Setenv(ver.CIEnvVar, "true")
	t.Setenv(ver.BranchEnvVar, "master")
	t.Setenv(ver.CommitEnvVar, "a5b7f46")

	outFile := filepath.Join(t.TempDir(), "version.json")

	err := rootCmd().Run(context.Background(), []string{
		"pver", "stamp",
		"--version", "1.2.3",
		"--build-type", "release",
		"--build-time", "2024-05-22T23:22:36Z",
		"--output", outFile,
		"--format", "json",
	})
	require.NoError(t, err)

	manifest, err := serializer.FromFile[versionManifest](outFile)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", manifest.Version.SemanticVersion)
	assert.Equal(t, "1716420156000", manifest.Version.BuildNumber)
	assert.Equal(t, ver.BuildTypeRelease, manifest.Version.BuildType)
	assert.Equal(t, "2024-05-22T23:22:36Z", manifest.Version.BuildDate)
	assert.Equal(t, int64(1716420156000), manifest.Version.BuildDateMillis)
	assert.Equal(t, "master", manifest.Version.Branch)
	assert.Equal(t, "a5b7f46", manifest.Version.Commit)
}

func TestStampManifestRoundTrip(t *testing.T) {
	t.Setenv(ver.CIEnvVar, "true")
	t.Setenv(ver.BranchEnvVar, "main")
	t.Setenv(ver.CommitEnvVar, "deadbeef")

	outFile := filepath.Join(t.TempDir(), "version.yaml")

	err := rootCmd().Run(context.Background(), []string{
		"pver", "stamp",
		"--version", "4.5.6",
		"--build-time", "2024-05-22T23:22:36Z",
		"--output", outFile,
		"--format", "yaml",
	})
	require.NoError(t, err)

	// The emitted manifest must reconstruct the same version value
	pv, err := resolveVersionArg(outFile)
	require.NoError(t, err)

	assert.Equal(t, "4.5.6-1716420156000", pv.SemanticVersion())
	assert.Equal(t, "main", pv.Branch())
	assert.Equal(t, "deadbeef", pv.Commit())
}

func TestStampRejectsInvalidInput(t *testing.T) {
	t.Setenv(ver.CIEnvVar, "")

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "bad version",
			args: []string{"pver", "stamp", "--version", "1.2.x"},
		},
		{
			name: "bad build type",
			args: []string{"pver", "stamp", "--version", "1.2.3", "--build-type", "nightly"},
		},
		{
			name: "bad build time",
			args: []string{"pver", "stamp", "--version", "1.2.3", "--build-time", "yesterday"},
		},
		{
			name: "bad format",
			args: []string{"pver", "stamp", "--version", "1.2.3", "--format", "xml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rootCmd().Run(context.Background(), tt.args)
			assert.Error(t, err)
		})
	}
}

func TestStampExplicitBranchCommit(t *testing.T) {
	t.Setenv(ver.CIEnvVar, "true")
	t.Setenv(ver.BranchEnvVar, "env-branch")
	t.Setenv(ver.CommitEnvVar, "env-commit")

	outFile := filepath.Join(t.TempDir(), "version.json")

	err := rootCmd().Run(context.Background(), []string{
		"pver", "stamp",
		"--version", "1.2.3",
		"--branch", "flag-branch",
		"--commit", "flag-commit",
		"--output", outFile,
		"--format", "json",
	})
	require.NoError(t, err)

	manifest, err := serializer.FromFile[versionManifest](outFile)
	require.NoError(t, err)

	assert.Equal(t, "flag-branch", manifest.Version.Branch)
	assert.Equal(t, "flag-commit", manifest.Version.Commit)
}
