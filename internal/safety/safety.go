// Package safety is the static risk gate: a fixed pattern table mapping
// dangerous command fragments to a severity, consulted before any
// execute or clipboard side effect.
package safety

import "strings"

// Severity levels, most severe first.
type Severity string

const (
	Critical Severity = "CRITICAL"
	High     Severity = "HIGH"
	Medium   Severity = "MEDIUM"
	Low      Severity = "LOW"
)

var severityRank = map[Severity]int{Critical: 0, High: 1, Medium: 2, Low: 3}

// Rank orders severities; lower is more severe.
func (s Severity) Rank() int { return severityRank[s] }

// PatternMatch is one risky fragment found in a command.
type PatternMatch struct {
	Keyword     string
	Severity    Severity
	Explanation string
	Alternative string
}

// Report is the gate's verdict for one command string.
type Report struct {
	IsRisky  bool
	Severity Severity
	Matches  []PatternMatch
}

type riskInfo struct {
	severity    Severity
	explanation string
	alternative string
}

var riskyPatterns = []struct {
	pattern string
	info    riskInfo
}{
	{"del /s", riskInfo{Critical, "Recursively deletes files - can destroy entire directories", "Use 'del <specific_file>' to delete one file at a time"}},
	{"rm -rf /", riskInfo{Critical, "DESTROYS ENTIRE SYSTEM - Deletes all files on system", "Never run this command! Specify exact directory instead"}},
	{"rm -rf", riskInfo{Critical, "Forcefully deletes directory tree - no confirmation", "Use 'rm -r' for confirmation prompts or specify exact path"}},
	{"format", riskInfo{Critical, "Formats/erases entire disk partition", "Double-check drive letter before formatting"}},
	{"mkfs", riskInfo{Critical, "Creates new filesystem - erases all data on partition", "Ensure correct device is specified (e.g., /dev/sdb1 not /dev/sda1)"}},
	{" dd ", riskInfo{Critical, "Low-level disk copy - can overwrite wrong drive", "Triple-check 'if' and 'of' parameters before running"}},
	{"shutdown", riskInfo{High, "Shuts down the system", "Save all work before executing"}},
	{"reboot", riskInfo{High, "Restarts the system immediately", "Use 'shutdown -r +5' to delay 5 minutes"}},
	{"systemctl stop", riskInfo{High, "Stops system service - may affect system functionality", "Use 'systemctl restart' to restart instead of stopping"}},
	{"net user", riskInfo{High, "Modifies user accounts - can lock you out", "Be careful when changing passwords or disabling accounts"}},
	{"chmod 777", riskInfo{High, "Gives full permissions to everyone - security risk", "Use minimal permissions needed (e.g., chmod 755)"}},
	{"del", riskInfo{Medium, "Deletes files - cannot be undone easily", "Move to recycle bin first or backup important files"}},
	{" rm ", riskInfo{Medium, "Removes files permanently", "Use 'mv file ~/.Trash' to move to trash instead"}},
	{"kill -9", riskInfo{Medium, "Force kills process without cleanup", "Try 'kill <pid>' first (allows graceful shutdown)"}},
	{"pkill", riskInfo{Medium, "Kills processes by name - may affect multiple processes", "Check processes with 'ps aux | grep <name>' first"}},
	{"chown -R", riskInfo{Medium, "Recursively changes file ownership", "Specify exact directory to avoid unintended changes"}},
	{"firewall", riskInfo{Low, "Modifies firewall settings", "Backup firewall rules before making changes"}},
	{"ufw", riskInfo{Low, "Changes firewall configuration", "Test rules before applying permanently"}},
	{"diskpart", riskInfo{Low, "Disk partition management tool", "Use carefully - can affect disk structure"}},
}

// AnalyzeRisk scans a command for risky fragments and reports the highest
// severity found.
func AnalyzeRisk(command string) Report {
	// Leading space so patterns anchored on a preceding space still match
	// at the start of the command.
	cmdLower := " " + strings.ToLower(command)

	var report Report
	for _, rp := range riskyPatterns {
		if !strings.Contains(cmdLower, rp.pattern) {
			continue
		}
		report.Matches = append(report.Matches, PatternMatch{
			Keyword:     strings.TrimSpace(rp.pattern),
			Severity:    rp.info.severity,
			Explanation: rp.info.explanation,
			Alternative: rp.info.alternative,
		})
		if !report.IsRisky || rp.info.severity.Rank() < report.Severity.Rank() {
			report.Severity = rp.info.severity
		}
		report.IsRisky = true
	}
	return report
}
