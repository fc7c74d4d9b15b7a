package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func reset(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = "dev", "none", "unknown"
}

func TestFill(t *testing.T) {
	reset(t)
	fill(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})
	if Version != "v0.3.1" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("fill() = %s %s %s", Version, Commit, Date)
	}
}

func TestFillKeepsLdflags(t *testing.T) {
	reset(t)
	Version, Commit = "v9.9.9", "feed"
	fill(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})
	if Version != "v9.9.9" || Commit != "feed" {
		t.Errorf("fill() overwrote ldflags values: %s %s", Version, Commit)
	}
}

func TestTemplate(t *testing.T) {
	reset(t)
	Version = "v1.0.0"
	if got := Template(); !strings.Contains(got, "version v1.0.0") {
		t.Errorf("Template() = %q", got)
	}
	if got := String(); !strings.Contains(got, "go: go") {
		t.Errorf("String() = %q, want Go version line", got)
	}
}
