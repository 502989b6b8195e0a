package platform

import (
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	fam := Detect()
	if runtime.GOOS == "windows" {
		if fam != Windows {
			t.Errorf("Detect() = %s, want %s", fam, Windows)
		}
	} else if fam != Linux {
		t.Errorf("Detect() = %s, want %s", fam, Linux)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Family
		wantErr bool
	}{
		{"windows", Windows, false},
		{"linux", Linux, false},
		{"", Detect(), false},
		{"macos", "", true},
		{"Windows", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %s", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestPathSep(t *testing.T) {
	if sep := Windows.PathSep(); sep != `\` {
		t.Errorf("Windows.PathSep() = %q, want backslash", sep)
	}
	if sep := Linux.PathSep(); sep != "/" {
		t.Errorf("Linux.PathSep() = %q, want slash", sep)
	}
}
