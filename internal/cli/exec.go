package cli

import (
	"context"
	"io"
	"os/exec"

	"github.com/atotto/clipboard"

	"github.com/oravec/nlcmd/internal/platform"
)

// Runner executes resolved commands through the family's shell. Chained
// commands pass through unsplit so the shell handles "&&" ordering.
type Runner struct {
	fam    platform.Family
	stdout io.Writer
	stderr io.Writer
}

// NewRunner routes command output to the given writers.
func NewRunner(fam platform.Family, stdout, stderr io.Writer) *Runner {
	return &Runner{fam: fam, stdout: stdout, stderr: stderr}
}

// Run executes one command string in the family's shell.
func (r *Runner) Run(ctx context.Context, command string) error {
	var cmd *exec.Cmd
	if r.fam == platform.Windows {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	return cmd.Run()
}

// CopyToClipboard puts the resolved command on the system clipboard.
func CopyToClipboard(command string) error {
	return clipboard.WriteAll(command)
}
