// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"time"

	"github.com/cthing/projectversion/pkg/header"
	"github.com/cthing/projectversion/pkg/serializer"
	ver "github.com/cthing/projectversion/pkg/version"
)

// versionManifest is the document emitted by the stamp command: a resource
// header plus the full wire form of the resolved version.
type versionManifest struct {
	Header  *header.Header `json:"header" yaml:"header"`
	Version ver.Record     `json:"version" yaml:"version"`
}

func newVersionManifest(pv *ver.ProjectVersion) *versionManifest {
	h := header.New()
	h.Init(header.KindProjectVersion, version)
	return &versionManifest{
		Header:  h,
		Version: pv.Record(),
	}
}

// resolveVersionArg interprets a compare argument as either the path of a
// previously emitted version manifest or a plain core version string. Plain
// strings are pinned to the Unix Epoch so comparing them is deterministic
// regardless of the caller's environment.
func resolveVersionArg(arg string) (*ver.ProjectVersion, error) {
	if _, err := os.Stat(arg); err == nil {
		manifest, err := serializer.FromFile[versionManifest](arg)
		if err != nil {
			return nil, err
		}
		return ver.FromRecord(manifest.Version)
	}

	return ver.New(arg, ver.BuildTypeSnapshot,
		ver.WithBuildTime(time.UnixMilli(0).UTC()),
		ver.WithBranch(""),
		ver.WithCommit(""))
}
