// Copyright 2025 C Thing Software
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"testing"
	"time"
)

var benchEnv = fakeEnv{ci: true, branch: "master", commit: "a5b7f46"}

func benchVersion(b *testing.B, core string, buildType BuildType) *ProjectVersion {
	b.Helper()
	v, err := New(core, buildType,
		WithEnvironment(benchEnv),
		WithBuildTime(time.UnixMilli(1716420156000).UTC()))
	if err != nil {
		b.Fatalf("failed to build version: %v", err)
	}
	return v
}

func BenchmarkNew(b *testing.B) {
	at := time.UnixMilli(1716420156000).UTC()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New("1.2.3", BuildTypeSnapshot,
			WithEnvironment(benchEnv),
			WithBuildTime(at))
	}
}

func BenchmarkNewInvalid(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New("1.2.x", BuildTypeSnapshot, WithEnvironment(benchEnv))
	}
}

func BenchmarkCompare(b *testing.B) {
	v1 := benchVersion(b, "1.2.3", BuildTypeSnapshot)
	v2 := benchVersion(b, "1.2.3", BuildTypeRelease)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}

func BenchmarkEqual(b *testing.B) {
	v1 := benchVersion(b, "1.2.3", BuildTypeRelease)
	v2 := benchVersion(b, "1.2.3", BuildTypeRelease)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Equal(v2)
	}
}

func BenchmarkHash(b *testing.B) {
	v := benchVersion(b, "1.2.3", BuildTypeRelease)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Hash()
	}
}

func BenchmarkMarshalBinary(b *testing.B) {
	v := benchVersion(b, "1.2.3", BuildTypeSnapshot)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.MarshalBinary()
	}
}

func BenchmarkUnmarshalBinary(b *testing.B) {
	v := benchVersion(b, "1.2.3", BuildTypeSnapshot)
	data, err := v.MarshalBinary()
	if err != nil {
		b.Fatalf("failed to encode version: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var decoded ProjectVersion
		_ = decoded.UnmarshalBinary(data)
	}
}

func BenchmarkString(b *testing.B) {
	v := benchVersion(b, "1.2.3", BuildTypeSnapshot)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}
