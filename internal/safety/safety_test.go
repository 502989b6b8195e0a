package safety

import "testing"

func TestAnalyzeRiskSafeCommands(t *testing.T) {
	for _, cmd := range []string{"ls -la", "dir", "git status", "df -h", "ipconfig", "echo hello"} {
		if report := AnalyzeRisk(cmd); report.IsRisky {
			t.Errorf("AnalyzeRisk(%q).IsRisky = true: %+v", cmd, report.Matches)
		}
	}
}

func TestAnalyzeRiskSeverity(t *testing.T) {
	tests := []struct {
		command string
		want    Severity
	}{
		{"rm -rf /tmp/build", Critical},
		{"shutdown now", High},
		{"chmod 777 /srv/app", High},
		{"rm notes.txt", Medium},
		{"pkill chrome", Medium},
		{"ufw allow 22", Low},
		{"RM -RF /var/cache", Critical}, // case insensitive
	}

	for _, tt := range tests {
		report := AnalyzeRisk(tt.command)
		if !report.IsRisky {
			t.Errorf("AnalyzeRisk(%q).IsRisky = false", tt.command)
			continue
		}
		if report.Severity != tt.want {
			t.Errorf("AnalyzeRisk(%q).Severity = %s, want %s", tt.command, report.Severity, tt.want)
		}
	}
}

func TestAnalyzeRiskMostSevereWins(t *testing.T) {
	report := AnalyzeRisk("rm -rf build && shutdown now")
	if report.Severity != Critical {
		t.Errorf("Severity = %s, want %s", report.Severity, Critical)
	}
	if len(report.Matches) < 2 {
		t.Errorf("Matches = %d, want at least 2", len(report.Matches))
	}
}

func TestAnalyzeRiskWordBoundaries(t *testing.T) {
	// "add" must not trip the dd pattern.
	if report := AnalyzeRisk("git add ."); report.IsRisky {
		t.Errorf("git add flagged risky: %+v", report.Matches)
	}
}

func TestSeverityRank(t *testing.T) {
	if !(Critical.Rank() < High.Rank() && High.Rank() < Medium.Rank() && Medium.Rank() < Low.Rank()) {
		t.Error("severity ranks out of order")
	}
}
