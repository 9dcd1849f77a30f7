package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if info.Commit == "" {
		t.Error("Commit should resolve to a stamped value, a VCS revision or unknown")
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("GoVersion = %q, want a runtime version", info.GoVersion)
	}
}

func TestString(t *testing.T) {
	got := String()
	for _, part := range []string{Version, "commit:", "built:"} {
		if !strings.Contains(got, part) {
			t.Errorf("String() = %q, want it to contain %q", got, part)
		}
	}
}

func TestCommitPrefersStampedValue(t *testing.T) {
	old := Commit
	defer func() { Commit = old }()

	Commit = "abc1234"
	if got := commit(); got != "abc1234" {
		t.Errorf("commit() = %q, want the stamped value", got)
	}
}
