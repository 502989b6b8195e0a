package match

import (
	"sort"
	"strings"

	"github.com/oravec/nlcmd/internal/platform"
)

// Solution is one troubleshooting entry scored against a query.
type Solution struct {
	Command     string
	Explanation string
	Category    string
	Problem     string
	Relevance   int
}

type remedy struct {
	problem     string
	solution    string
	explanation string
}

type problemCategory struct {
	name     string
	keywords []string
	remedies map[platform.Family][]remedy
}

// The curated troubleshooting catalog. Categories are checked in order;
// relevance is keyword hits plus words shared with the problem phrase.
var problemCatalog = []problemCategory{
	{
		name:     "network",
		keywords: []string{"network", "internet", "connection", "wifi", "lan", "ethernet", "offline", "not working", "no connection"},
		remedies: map[platform.Family][]remedy{
			platform.Windows: {
				{"internet not working", "ipconfig /release && ipconfig /renew && ipconfig /flushdns", "Reset network connection and flush DNS"},
				{"wifi not connecting", "netsh wlan show networks", "Show available WiFi networks"},
				{"check network status", "netsh interface show interface", "Display network adapter status"},
				{"network is slow", "netstat -ano", "Check active connections"},
			},
			platform.Linux: {
				{"internet not working", "sudo systemctl restart NetworkManager", "Restart network service"},
				{"check network", "ping -c 4 8.8.8.8 && ip addr show", "Test connection and show IP"},
				{"wifi not connecting", "nmcli device wifi list", "List WiFi networks"},
			},
		},
	},
	{
		name:     "system_error",
		keywords: []string{"error", "corrupt", "broken", "damaged", "crash", "fail", "not responding", "missing", "dll", "system file"},
		remedies: map[platform.Family][]remedy{
			platform.Windows: {
				{"system files corrupted", "sfc /scannow", "Scan and repair system files"},
				{"missing dll", "sfc /scannow && DISM /Online /Cleanup-Image /RestoreHealth", "Repair system files and image"},
				{"windows update error", `net stop wuauserv && del /f/s/q %windir%\SoftwareDistribution\* && net start wuauserv`, "Reset Windows Update"},
				{"disk errors", "chkdsk C: /f /r", "Check and repair disk errors"},
				{"hard drive error", "chkdsk C: /f /r", "Check and repair disk errors"},
			},
			platform.Linux: {
				{"system error", "journalctl -xe | tail -50", "View recent system errors"},
				{"package broken", "sudo apt --fix-broken install", "Fix broken packages"},
				{"disk errors", "sudo fsck -y /dev/sda1", "Check filesystem"},
			},
		},
	},
	{
		name:     "performance",
		keywords: []string{"slow", "freeze", "lag", "hang", "stuck", "cpu", "memory", "ram"},
		remedies: map[platform.Family][]remedy{
			platform.Windows: {
				{"computer slow", "tasklist /V && wmic cpu get loadpercentage", "Check process and CPU usage"},
				{"high cpu usage", `powershell "Get-Process | Sort-Object CPU -Descending | Select-Object -First 10"`, "Show top CPU processes"},
				{"memory full", `systeminfo | findstr /C:"Available Physical Memory"`, "Check available RAM"},
				{"disk full", "wmic logicaldisk get size,freespace,caption", "Check disk space"},
			},
			platform.Linux: {
				{"system slow", "top -bn1 | head -20", "Show system resource usage"},
				{"high cpu", "ps aux --sort=-%cpu | head -10", "Top CPU processes"},
				{"memory full", "free -h && ps aux --sort=-%mem | head -10", "Check memory and top processes"},
				{"disk full", "df -h && du -sh /* | sort -rh | head -10", "Check disk usage"},
			},
		},
	},
	{
		name:     "application",
		keywords: []string{"app", "program", "application", "not opening", "wont start", "frozen"},
		remedies: map[platform.Family][]remedy{
			platform.Windows: {
				{"app not responding", "taskkill /IM <process>.exe /F", "Force close application"},
				{"program wont start", `tasklist /FI "IMAGENAME eq <process>.exe"`, "Check if program is running"},
			},
			platform.Linux: {
				{"app frozen", "pkill -9 <process>", "Force kill process"},
				{"check if running", "ps aux | grep <process>", "Find running process"},
			},
		},
	},
	{
		name:     "security",
		keywords: []string{"virus", "malware", "hack", "security", "suspicious", "unauthorized"},
		remedies: map[platform.Family][]remedy{
			platform.Windows: {
				{"suspicious activity", "netstat -ano && tasklist /V", "Check active connections and processes"},
				{"check open ports", "netstat -ano | findstr LISTENING", "Show listening ports"},
			},
			platform.Linux: {
				{"suspicious activity", "netstat -tulpn && ps aux --sort=-%cpu", "Check connections and processes"},
				{"unauthorized access", "last -a && who", "Check login history"},
			},
		},
	},
	{
		name:     "boot",
		keywords: []string{"boot", "startup", "wont start", "black screen", "grub"},
		remedies: map[platform.Family][]remedy{
			platform.Windows: {
				{"boot error", "bootrec /fixmbr && bootrec /fixboot && bootrec /rebuildbcd", "Repair boot configuration"},
			},
			platform.Linux: {
				{"grub error", "sudo update-grub && sudo grub-install /dev/sda", "Repair GRUB bootloader"},
			},
		},
	},
}

// Diagnose maps a problem description onto curated solutions for the
// family. Only entries sharing at least one word with the problem phrase
// are considered; results come back sorted by descending relevance, top 3.
func (m *Matcher) Diagnose(q string, fam platform.Family) []Solution {
	qLower := strings.ToLower(q)
	qWords := wordSet(qLower)

	var out []Solution
	for _, cat := range problemCatalog {
		hits := 0
		for _, kw := range cat.keywords {
			if strings.Contains(qLower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		for _, r := range cat.remedies[fam] {
			overlap := sharedWords(qWords, r.problem)
			if overlap == 0 {
				continue
			}
			out = append(out, Solution{
				Command:     r.solution,
				Explanation: r.explanation,
				Category:    cat.name,
				Problem:     r.problem,
				Relevance:   overlap + hits,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Relevance > out[j].Relevance })
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func wordSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

func sharedWords(qWords map[string]struct{}, problem string) int {
	n := 0
	for w := range wordSet(strings.ToLower(problem)) {
		if _, ok := qWords[w]; ok {
			n++
		}
	}
	return n
}
