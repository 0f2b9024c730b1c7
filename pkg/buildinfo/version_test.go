package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	withModule := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.3.1"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			},
		}, true
	}
	devel := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	}
	missing := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		name        string
		version     string
		read        func() (*debug.BuildInfo, bool)
		wantVersion string
		wantCommit  string
	}{
		{"ldflags win", "v1.0.0", withModule, "v1.0.0", "none"},
		{"module version", "dev", withModule, "v0.3.1", "abc123"},
		{"devel build", "dev", devel, "dev", "none"},
		{"no build info", "dev", missing, "dev", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := Version
			Version = tt.version
			defer func() { Version = saved }()

			got := resolve(tt.read)
			if got.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", got.Version, tt.wantVersion)
			}
			if got.Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", got.Commit, tt.wantCommit)
			}
			if got.GoVersion == "" {
				t.Error("GoVersion should be set")
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} version ") {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: ") {
		t.Errorf("String() = %q", String())
	}
}
