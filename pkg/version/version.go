// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cthing/projectversion/pkg/errors"
)

const (
	unknownBranch = "unknown"
	unknownCommit = "unknown"
)

// coreVersionPattern matches exactly three dot-separated non-negative
// integer components. Leading zeros are accepted.
var coreVersionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// NoVersion is a shared immutable value indicating that no version has been
// specified: 0.0.0, build number 0, snapshot, built at the Unix Epoch.
var NoVersion = noVersion()

// ProjectVersion is an immutable project version: a major.minor.patch core
// version plus build provenance. Construct values with New; the zero value
// is not usable.
type ProjectVersion struct {
	coreVersion     string
	semanticVersion string
	majorVersion    int
	minorVersion    int
	patchVersion    int
	buildNumber     string
	buildType       BuildType
	buildDate       string
	buildDateMillis int64
	branch          string
	commit          string
}

// settings collects the optional construction inputs. Each "has" flag
// distinguishes an explicitly supplied value from a defaulted one.
type settings struct {
	buildTime    time.Time
	hasBuildTime bool
	branch       string
	hasBranch    bool
	commit       string
	hasCommit    bool
	env          BuildEnv
}

// Option is a functional option for New.
type Option func(*settings)

// WithBuildTime sets the build timestamp. When absent, the wall clock time
// at construction is used.
func WithBuildTime(t time.Time) Option {
	return func(s *settings) {
		s.buildTime = t
		s.hasBuildTime = true
	}
}

// WithBranch sets the source control branch. A blank value normalizes to
// "unknown". When absent, the branch is read from the build environment.
func WithBranch(branch string) Option {
	return func(s *settings) {
		s.branch = branch
		s.hasBranch = true
	}
}

// WithCommit sets the source control commit hash. A blank value normalizes
// to "unknown". When absent, the commit is read from the build environment.
func WithCommit(commit string) Option {
	return func(s *settings) {
		s.commit = commit
		s.hasCommit = true
	}
}

// WithEnvironment sets the build environment consulted for the CI indicator
// and defaulted branch/commit. When absent, the process environment is used.
func WithEnvironment(env BuildEnv) Option {
	return func(s *settings) {
		s.env = env
	}
}

// New constructs a ProjectVersion from a core version string in
// major.minor.patch form and the requested build type. All environment
// signals are read exactly once, at construction.
//
// The version is rejected with an INVALID_ARGUMENT error if the trimmed
// core version is empty or does not consist of three dot-separated
// non-negative integers, or if the build type is not recognized.
func New(coreVersion string, buildType BuildType, opts ...Option) (*ProjectVersion, error) {
	cfg := settings{env: OSEnv{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	core := strings.TrimSpace(coreVersion)
	if core == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "version string cannot be empty or blank")
	}

	groups := coreVersionPattern.FindStringSubmatch(core)
	if groups == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			"version must consist of three non-negative integers: major.minor.patch",
			map[string]any{"version": core})
	}

	if !buildType.IsValid() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unknown build type (supported values: %s)", SupportedBuildTypes()),
			map[string]any{"buildType": string(buildType)})
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

	v := &ProjectVersion{
		coreVersion:  core,
		majorVersion: major,
		minorVersion: minor,
		patchVersion: patch,
	}

	now := cfg.buildTime
	if !cfg.hasBuildTime {
		now = time.Now()
	}

	if IsDeveloperBuildIn(cfg.env) {
		v.buildNumber = "0"
		v.buildType = BuildTypeSnapshot
	} else {
		v.buildNumber = strconv.FormatInt(now.UnixMilli(), 10)
		v.buildType = buildType
	}

	v.buildDate = now.UTC().Format(time.RFC3339)
	v.buildDateMillis = now.UnixMilli()

	branch := cfg.branch
	if !cfg.hasBranch && cfg.env != nil {
		branch = cfg.env.Branch()
	}
	if strings.TrimSpace(branch) == "" {
		branch = unknownBranch
	}
	v.branch = branch

	commit := cfg.commit
	if !cfg.hasCommit && cfg.env != nil {
		commit = cfg.env.Commit()
	}
	if strings.TrimSpace(commit) == "" {
		commit = unknownCommit
	}
	v.commit = commit

	if v.IsSnapshotBuild() {
		v.semanticVersion = v.coreVersion + "-" + v.buildNumber
	} else {
		v.semanticVersion = v.coreVersion
	}

	return v, nil
}

func parseComponent(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidArgument,
			"version component out of range", err,
			map[string]any{"component": s})
	}
	return n, nil
}

func noVersion() *ProjectVersion {
	epoch := time.UnixMilli(0).UTC()
	return &ProjectVersion{
		coreVersion:     "0.0.0",
		semanticVersion: "0.0.0-0",
		buildNumber:     "0",
		buildType:       BuildTypeSnapshot,
		buildDate:       epoch.Format(time.RFC3339),
		buildDateMillis: 0,
		branch:          unknownBranch,
		commit:          unknownCommit,
	}
}

// SemanticVersion returns the complete semantic version including the
// pre-release portion if this is a snapshot build (e.g. 1.2.3-1716422556680).
func (v *ProjectVersion) SemanticVersion() string {
	return v.semanticVersion
}

// CoreVersion returns the major, minor and patch version without the
// pre-release portion (e.g. 1.2.3).
func (v *ProjectVersion) CoreVersion() string {
	return v.coreVersion
}

// MajorVersion returns the first component of the semantic version.
func (v *ProjectVersion) MajorVersion() int {
	return v.majorVersion
}

// MinorVersion returns the second component of the semantic version.
func (v *ProjectVersion) MinorVersion() int {
	return v.minorVersion
}

// PatchVersion returns the third component of the semantic version.
func (v *ProjectVersion) PatchVersion() int {
	return v.patchVersion
}

// BuildNumber returns the build number: "0" for developer builds, the build
// timestamp in milliseconds since the Unix Epoch for CI builds.
func (v *ProjectVersion) BuildNumber() string {
	return v.buildNumber
}

// BuildType returns the effective build type.
func (v *ProjectVersion) BuildType() BuildType {
	return v.buildType
}

// IsReleaseBuild reports whether this version represents a release build.
func (v *ProjectVersion) IsReleaseBuild() bool {
	return v.buildType == BuildTypeRelease
}

// IsSnapshotBuild reports whether this version represents a snapshot build.
func (v *ProjectVersion) IsSnapshotBuild() bool {
	return v.buildType == BuildTypeSnapshot
}

// BuildDate returns the build date formatted in UTC per RFC 3339 at seconds
// precision (e.g. 2024-05-22T23:22:36Z).
func (v *ProjectVersion) BuildDate() string {
	return v.buildDate
}

// BuildDateMillis returns the build date as milliseconds since the Unix Epoch.
func (v *ProjectVersion) BuildDateMillis() int64 {
	return v.buildDateMillis
}

// Branch returns the source control branch name, or "unknown".
func (v *ProjectVersion) Branch() string {
	return v.branch
}

// Commit returns the source control commit hash, or "unknown".
func (v *ProjectVersion) Commit() string {
	return v.commit
}

// Compare returns an integer comparing two versions: -1 if v < other,
// 0 if v == other, 1 if v > other. Versions order by major, minor, and
// patch; for equal core versions a release sorts above any snapshot, two
// releases always compare equal regardless of build time, and snapshots
// tie-break on ascending build time.
func (v *ProjectVersion) Compare(other *ProjectVersion) int {
	if v.majorVersion < other.majorVersion {
		return -1
	}
	if v.majorVersion > other.majorVersion {
		return 1
	}

	if v.minorVersion < other.minorVersion {
		return -1
	}
	if v.minorVersion > other.minorVersion {
		return 1
	}

	if v.patchVersion < other.patchVersion {
		return -1
	}
	if v.patchVersion > other.patchVersion {
		return 1
	}

	if v.IsReleaseBuild() && other.IsReleaseBuild() {
		return 0
	}
	if v.IsReleaseBuild() {
		return 1
	}
	if other.IsReleaseBuild() {
		return -1
	}

	if v.buildDateMillis < other.buildDateMillis {
		return -1
	}
	if v.buildDateMillis > other.buildDateMillis {
		return 1
	}
	return 0
}

// Equal reports whether two versions are equal: same major, minor, and
// patch components, build number, and effective build type. Branch, commit,
// and build date are deliberately excluded.
func (v *ProjectVersion) Equal(other *ProjectVersion) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	return v.majorVersion == other.majorVersion &&
		v.minorVersion == other.minorVersion &&
		v.patchVersion == other.patchVersion &&
		v.buildNumber == other.buildNumber &&
		v.buildType == other.buildType
}

// Hash returns a hash over the same fields Equal compares, so equal
// versions always produce equal hashes.
func (v *ProjectVersion) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%d|%s|%s",
		v.majorVersion, v.minorVersion, v.patchVersion, v.buildNumber, v.buildType)
	return h.Sum64()
}

// String returns the complete semantic version. Equivalent to SemanticVersion.
func (v *ProjectVersion) String() string {
	return v.semanticVersion
}
