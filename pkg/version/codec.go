// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/cthing/projectversion/pkg/errors"
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same version always produces identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR. Unknown
// fields are ignored for forward compatibility.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("version: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("version: CBOR decoder initialization failed: " + err.Error())
	}
}

// Record is the exported wire form of a ProjectVersion. It carries every
// stored field, including those excluded from equality, so that a version
// encoded on one host decodes identically on another.
type Record struct {
	CoreVersion     string    `json:"coreVersion" yaml:"coreVersion" cbor:"coreVersion"`
	SemanticVersion string    `json:"semanticVersion" yaml:"semanticVersion" cbor:"semanticVersion"`
	MajorVersion    int       `json:"majorVersion" yaml:"majorVersion" cbor:"majorVersion"`
	MinorVersion    int       `json:"minorVersion" yaml:"minorVersion" cbor:"minorVersion"`
	PatchVersion    int       `json:"patchVersion" yaml:"patchVersion" cbor:"patchVersion"`
	BuildNumber     string    `json:"buildNumber" yaml:"buildNumber" cbor:"buildNumber"`
	BuildType       BuildType `json:"buildType" yaml:"buildType" cbor:"buildType"`
	BuildDate       string    `json:"buildDate" yaml:"buildDate" cbor:"buildDate"`
	BuildDateMillis int64     `json:"buildDateMillis" yaml:"buildDateMillis" cbor:"buildDateMillis"`
	Branch          string    `json:"branch" yaml:"branch" cbor:"branch"`
	Commit          string    `json:"commit" yaml:"commit" cbor:"commit"`
}

// Record returns the wire form of the version.
func (v *ProjectVersion) Record() Record {
	return Record{
		CoreVersion:     v.coreVersion,
		SemanticVersion: v.semanticVersion,
		MajorVersion:    v.majorVersion,
		MinorVersion:    v.minorVersion,
		PatchVersion:    v.patchVersion,
		BuildNumber:     v.buildNumber,
		BuildType:       v.buildType,
		BuildDate:       v.buildDate,
		BuildDateMillis: v.buildDateMillis,
		Branch:          v.branch,
		Commit:          v.commit,
	}
}

// FromRecord reconstructs a ProjectVersion from its wire form. The record is
// validated against the same invariants New enforces, but no field is
// re-derived: the decoded value reflects the environment of the encoding
// host, not the decoding one.
func FromRecord(r Record) (*ProjectVersion, error) {
	groups := coreVersionPattern.FindStringSubmatch(r.CoreVersion)
	if groups == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			"record core version must consist of three non-negative integers: major.minor.patch",
			map[string]any{"version": r.CoreVersion})
	}

	major, err := parseComponent(groups[1])
	if err != nil {
		return nil, err
	}
	minor, err := parseComponent(groups[2])
	if err != nil {
		return nil, err
	}
	patch, err := parseComponent(groups[3])
	if err != nil {
		return nil, err
	}
	if major != r.MajorVersion || minor != r.MinorVersion || patch != r.PatchVersion {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			"record version components do not match the core version string",
			map[string]any{"version": r.CoreVersion})
	}

	if !r.BuildType.IsValid() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			"record build type is not recognized",
			map[string]any{"buildType": string(r.BuildType)})
	}

	wantSemantic := r.CoreVersion
	if r.BuildType == BuildTypeSnapshot {
		wantSemantic = r.CoreVersion + "-" + r.BuildNumber
	}
	if r.SemanticVersion != wantSemantic {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			"record semantic version is inconsistent with its core version and build number",
			map[string]any{"semanticVersion": r.SemanticVersion, "expected": wantSemantic})
	}

	branch := r.Branch
	if branch == "" {
		branch = unknownBranch
	}
	commit := r.Commit
	if commit == "" {
		commit = unknownCommit
	}

	return &ProjectVersion{
		coreVersion:     r.CoreVersion,
		semanticVersion: r.SemanticVersion,
		majorVersion:    r.MajorVersion,
		minorVersion:    r.MinorVersion,
		patchVersion:    r.PatchVersion,
		buildNumber:     r.BuildNumber,
		buildType:       r.BuildType,
		buildDate:       r.BuildDate,
		buildDateMillis: r.BuildDateMillis,
		branch:          branch,
		commit:          commit,
	}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using deterministic CBOR.
func (v *ProjectVersion) MarshalBinary() ([]byte, error) {
	data, err := encMode.Marshal(v.Record())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to encode version", err)
	}
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *ProjectVersion) UnmarshalBinary(data []byte) error {
	var r Record
	if err := decMode.Unmarshal(data, &r); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgument, "failed to decode version", err)
	}
	decoded, err := FromRecord(r)
	if err != nil {
		return err
	}
	*v = *decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v *ProjectVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Record())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *ProjectVersion) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgument, "failed to decode version", err)
	}
	decoded, err := FromRecord(r)
	if err != nil {
		return err
	}
	*v = *decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v *ProjectVersion) MarshalYAML() (any, error) {
	return v.Record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *ProjectVersion) UnmarshalYAML(node *yaml.Node) error {
	var r Record
	if err := node.Decode(&r); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgument, "failed to decode version", err)
	}
	decoded, err := FromRecord(r)
	if err != nil {
		return err
	}
	*v = *decoded
	return nil
}
