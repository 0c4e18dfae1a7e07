// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package version

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	if v := GetVersion(); v != Version {
		t.Errorf("GetVersion() = %s, want %s", v, Version)
	}
	if Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestDefaultVersionFormat(t *testing.T) {
	// The shipped version must be three dot-separated numeric segments.
	parts := strings.Split(Version, ".")
	if len(parts) != 3 {
		t.Fatalf("Version %q should be in format X.Y.Z", Version)
	}
	for i, part := range parts {
		for _, r := range part {
			if r < '0' || r > '9' {
				t.Errorf("segment %d of version %q should be numeric", i, Version)
			}
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"0.1.0", "1.0.0", "12.34.56", "0.0.0"}
	for _, v := range valid {
		if !IsValid(v) {
			t.Errorf("IsValid(%q) = false, want true", v)
		}
	}

	invalid := []string{
		"",
		"1.0",
		"1.0.0.0",
		"1.0.x",
		"v1.0.0",
		"1..0",
		"1.0.",
		"1.0.0-rc1",
	}
	for _, v := range invalid {
		if IsValid(v) {
			t.Errorf("IsValid(%q) = true, want false", v)
		}
	}
}

func TestGetBuildInfo(t *testing.T) {
	GitCommit = "abc123"
	BuildDate = "2024-01-01"

	info := GetBuildInfo()

	if !strings.Contains(info, "Version: "+Version) {
		t.Error("Build info should contain version")
	}

	if !strings.Contains(info, "Git Commit: abc123") {
		t.Error("Build info should contain git commit")
	}

	if !strings.Contains(info, "Build Date: 2024-01-01") {
		t.Error("Build info should contain build date")
	}

	if !strings.Contains(info, "Go Version:") {
		t.Error("Build info should contain Go version")
	}

	if !strings.Contains(info, "OS/Arch:") {
		t.Error("Build info should contain OS/Arch")
	}
}
