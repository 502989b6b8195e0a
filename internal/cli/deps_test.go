package cli

import (
	"testing"

	"github.com/oravec/nlcmd/internal/platform"
)

func TestCheckShellName(t *testing.T) {
	if got := NewDependencyChecker(platform.Windows).CheckShell().Name; got != "cmd" {
		t.Errorf("windows shell = %s, want cmd", got)
	}
	if got := NewDependencyChecker(platform.Linux).CheckShell().Name; got != "sh" {
		t.Errorf("linux shell = %s, want sh", got)
	}
}

func TestCheckAllCovers(t *testing.T) {
	deps := NewDependencyChecker(platform.Linux).CheckAll()
	if len(deps) != 3 {
		t.Fatalf("CheckAll() returned %d statuses, want 3", len(deps))
	}
	names := map[string]bool{}
	for _, d := range deps {
		names[d.Name] = true
	}
	for _, want := range []string{"sh", "git", "clipboard"} {
		if !names[want] {
			t.Errorf("CheckAll() missing %s", want)
		}
	}
}

func TestCheckMissingSubset(t *testing.T) {
	checker := NewDependencyChecker(platform.Linux)
	for _, dep := range checker.CheckMissing() {
		if dep.Installed {
			t.Errorf("CheckMissing() returned installed tool %s", dep.Name)
		}
	}
}

func TestClipboardAssumedOnWindows(t *testing.T) {
	status := NewDependencyChecker(platform.Windows).CheckClipboard()
	if !status.Installed {
		t.Error("clipboard should be assumed present on windows")
	}
}
