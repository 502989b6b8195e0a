// Package cli owns the interactive surface: confirmation prompts, shell
// execution of resolved commands, and environment checks.
package cli

import (
	"os/exec"

	"github.com/oravec/nlcmd/internal/platform"
)

// DependencyStatus reports whether one external tool is usable.
type DependencyStatus struct {
	Name      string
	Installed bool
	Required  bool
	Message   string
}

// DependencyChecker probes the external tools resolution output relies on.
type DependencyChecker struct {
	fam platform.Family
}

// NewDependencyChecker builds a checker for the command family in use.
func NewDependencyChecker(fam platform.Family) *DependencyChecker {
	return &DependencyChecker{fam: fam}
}

// CheckAll probes the shell, git and clipboard tooling.
func (d *DependencyChecker) CheckAll() []DependencyStatus {
	return []DependencyStatus{
		d.CheckShell(),
		d.CheckGit(),
		d.CheckClipboard(),
	}
}

// CheckMissing returns only the dependencies that are not usable.
func (d *DependencyChecker) CheckMissing() []DependencyStatus {
	var missing []DependencyStatus
	for _, dep := range d.CheckAll() {
		if !dep.Installed {
			missing = append(missing, dep)
		}
	}
	return missing
}

// CheckShell verifies the command interpreter generated commands run under.
func (d *DependencyChecker) CheckShell() DependencyStatus {
	name := "sh"
	if d.fam == platform.Windows {
		name = "cmd"
	}
	status := DependencyStatus{Name: name, Required: true}
	if _, err := exec.LookPath(name); err != nil {
		status.Message = name + " is not on PATH; generated commands cannot be executed"
		return status
	}
	status.Installed = true
	return status
}

// CheckGit verifies git, which the version control templates depend on.
func (d *DependencyChecker) CheckGit() DependencyStatus {
	status := DependencyStatus{Name: "git"}
	if _, err := exec.LookPath("git"); err != nil {
		status.Message = "git is not installed; version control requests will generate commands you cannot run"
		return status
	}
	status.Installed = true
	return status
}

// CheckClipboard verifies a clipboard backend exists. On the Linux family
// the clipboard library shells out to one of the X/Wayland helpers.
func (d *DependencyChecker) CheckClipboard() DependencyStatus {
	status := DependencyStatus{Name: "clipboard"}
	if d.fam == platform.Windows {
		status.Installed = true
		return status
	}
	for _, tool := range []string{"xclip", "xsel", "wl-copy"} {
		if _, err := exec.LookPath(tool); err == nil {
			status.Installed = true
			return status
		}
	}
	status.Message = "no clipboard helper found (install xclip, xsel or wl-clipboard to use --copy)"
	return status
}
