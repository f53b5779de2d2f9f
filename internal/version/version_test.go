package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersionCarriesAllThreeParts(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	if Version == "" {
		t.Fatal("Version is empty")
	}
}

func TestOverridableBuildMetadata(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	GitCommit = "abc123"
	BuildDate = "2026-08-27T00:00:00Z"
	if GitCommit != "abc123" || BuildDate != "2026-08-27T00:00:00Z" {
		t.Fatalf("ldflags-style override failed: %q %q", GitCommit, BuildDate)
	}
}
