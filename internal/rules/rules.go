// Package rules is the exact, deterministic lookup strategy: a fixed
// ordered phrase table per OS family. It always answers; a miss returns a
// recognizable echo placeholder the arbitrator treats as failure.
package rules

import (
	"strings"

	"github.com/oravec/nlcmd/internal/platform"
)

type rule struct {
	phrases []string
	command string
}

var windowsRules = []rule{
	{[]string{"list all files", "show all files"}, "dir"},
	{[]string{"show hidden files"}, "dir /a:h"},
	{[]string{"show system information", "system info"}, "systeminfo"},
	{[]string{"get my ip", "show my ip", "ip address"}, "ipconfig"},
	{[]string{"check disk space", "disk usage"}, "wmic logicaldisk get size,freespace,caption"},
	{[]string{"show running processes", "list processes"}, "tasklist"},
	{[]string{"network connections", "open connections"}, "netstat -ano"},
	{[]string{"flush dns"}, "ipconfig /flushdns"},
	{[]string{"show date", "current time"}, "echo %date% %time%"},
	{[]string{"shutdown computer", "turn off computer"}, "shutdown /s /t 0"},
	{[]string{"restart computer", "reboot computer"}, "shutdown /r /t 0"},
	{[]string{"environment variables"}, "set"},
	{[]string{"windows version"}, "ver"},
	{[]string{"current directory", "where am i"}, "cd"},
	{[]string{"wifi networks"}, "netsh wlan show networks"},
	{[]string{"clean temporary files", "clear temp"}, `del /q /f /s %TEMP%\*`},
}

var linuxRules = []rule{
	{[]string{"list all files", "show all files"}, "ls -la"},
	{[]string{"show hidden files"}, "ls -a"},
	{[]string{"show system information", "system info"}, "uname -a"},
	{[]string{"get my ip", "show my ip", "ip address"}, "hostname -I"},
	{[]string{"check disk space", "disk usage"}, "df -h"},
	{[]string{"show running processes", "list processes"}, "ps aux"},
	{[]string{"network connections", "open connections"}, "netstat -tulpn"},
	{[]string{"flush dns"}, "sudo systemd-resolve --flush-caches"},
	{[]string{"show date", "current time"}, "date"},
	{[]string{"shutdown computer", "turn off computer"}, "shutdown now"},
	{[]string{"restart computer", "reboot computer"}, "reboot"},
	{[]string{"environment variables"}, "printenv"},
	{[]string{"kernel version"}, "uname -r"},
	{[]string{"current directory", "where am i"}, "pwd"},
	{[]string{"wifi networks"}, "nmcli device wifi list"},
	{[]string{"clean temporary files", "clear temp"}, "rm -rf /tmp/*"},
	{[]string{"memory usage", "free memory"}, "free -h"},
}

// placeholderPrefix marks the no-op answer for unmatched queries.
const placeholderPrefix = "echo Unrecognized command:"

// Matcher answers exact-phrase lookups for one family.
type Matcher struct {
	fam   platform.Family
	table []rule
}

// New builds the matcher for a family.
func New(fam platform.Family) *Matcher {
	table := linuxRules
	if fam == platform.Windows {
		table = windowsRules
	}
	return &Matcher{fam: fam, table: table}
}

// Handle returns the command for the first rule whose phrase appears in
// the query, or the echo placeholder on a miss.
func (m *Matcher) Handle(q string) string {
	qLower := strings.ToLower(q)
	for _, r := range m.table {
		for _, p := range r.phrases {
			if strings.Contains(qLower, p) {
				return r.command
			}
		}
	}
	return placeholderPrefix + " " + strings.TrimSpace(q)
}

// IsPlaceholder reports whether a rule answer is the no-op miss marker.
func IsPlaceholder(cmd string) bool {
	return strings.HasPrefix(cmd, placeholderPrefix)
}
