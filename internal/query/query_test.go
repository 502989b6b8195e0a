package query

import (
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"List All Files!!!", "list all files"},
		{"  show   my    IP  ", "show my ip"},
		{"what's my ip?", "what s my ip"},
		{"kill chrome", "kill chrome"},
		{"", ""},
		{"self-test", "self-test"},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"List All Files!!!",
		"Create a file named 'notes.txt'",
		"  SHUTDOWN   the Computer NOW  ",
	}
	for _, in := range inputs {
		once := NormalizeText(in)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("NormalizeText not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestProcessInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "the of and a", "!!!"} {
		p := Process(in)
		if p.Valid {
			t.Errorf("Process(%q).Valid = true, want false", in)
		}
	}
}

func TestProcessClassification(t *testing.T) {
	p := Process("list all files in the folder")
	if !p.Valid {
		t.Fatal("Process returned invalid for a real query")
	}
	if !contains(p.Actions, "list") {
		t.Errorf("Actions = %v, want to contain list", p.Actions)
	}
	if !contains(p.Targets, "files") || !contains(p.Targets, "folder") {
		t.Errorf("Targets = %v, want files and folder", p.Targets)
	}
	if contains(p.Keywords, "the") || contains(p.Keywords, "in") {
		t.Errorf("Keywords = %v, stop words not removed", p.Keywords)
	}
}

func TestProcessParams(t *testing.T) {
	tests := []struct {
		query string
		kind  string
		want  string
	}{
		{"create a file named notes.txt", ParamFilename, "notes.txt"},
		{"download https://example.com/data", ParamURL, "https://example.com/data"},
		{"ping 192.168.1.1 please", ParamIP, "192.168.1.1"},
		{"what is listening on port 8080", ParamPort, "8080"},
		{"find all .log files", ParamExtension, "log"},
		{"show the top 10 processes", ParamNumber, "10"},
		{"create a file with content 'hello world'", ParamContent, "hello world"},
		{"move it to /var/log/app", ParamPath, "/var/log/app"},
	}

	for _, tt := range tests {
		p := Process(tt.query)
		got, ok := p.Params[tt.kind]
		if !ok {
			t.Errorf("Process(%q) missing param %s", tt.query, tt.kind)
			continue
		}
		if got != tt.want {
			t.Errorf("Process(%q) param %s = %q, want %q", tt.query, tt.kind, got, tt.want)
		}
	}
}

func TestProcessOriginalPreserved(t *testing.T) {
	raw := "Create a FILE named Notes.txt!"
	p := Process(raw)
	if p.Original != raw {
		t.Errorf("Original = %q, want untouched input", p.Original)
	}
	if p.Normalized == raw {
		t.Error("Normalized should differ from raw input here")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
