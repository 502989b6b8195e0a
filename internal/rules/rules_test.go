package rules

import (
	"testing"

	"github.com/oravec/nlcmd/internal/platform"
)

func TestHandleKnownPhrases(t *testing.T) {
	tests := []struct {
		fam   platform.Family
		query string
		want  string
	}{
		{platform.Linux, "list all files", "ls -la"},
		{platform.Linux, "please list all files now", "ls -la"},
		{platform.Linux, "show me my ip address", "hostname -I"},
		{platform.Linux, "check disk space", "df -h"},
		{platform.Windows, "list all files", "dir"},
		{platform.Windows, "what is my ip address", "ipconfig"},
		{platform.Windows, "SHOW HIDDEN FILES", "dir /a:h"},
	}

	for _, tt := range tests {
		m := New(tt.fam)
		if got := m.Handle(tt.query); got != tt.want {
			t.Errorf("Handle(%q) on %s = %q, want %q", tt.query, tt.fam, got, tt.want)
		}
	}
}

func TestHandleMiss(t *testing.T) {
	m := New(platform.Linux)
	got := m.Handle("transmogrify the widget")
	if !IsPlaceholder(got) {
		t.Errorf("Handle miss = %q, want placeholder", got)
	}
}

func TestIsPlaceholder(t *testing.T) {
	if IsPlaceholder("ls -la") {
		t.Error("real command flagged as placeholder")
	}
	if !IsPlaceholder("echo Unrecognized command: foo") {
		t.Error("placeholder not recognized")
	}
}

func TestFirstRuleWins(t *testing.T) {
	// "list all files" and "show hidden files" can both appear; table
	// order decides.
	m := New(platform.Linux)
	if got := m.Handle("list all files and show hidden files"); got != "ls -la" {
		t.Errorf("Handle = %q, want ls -la", got)
	}
}
