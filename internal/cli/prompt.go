package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/oravec/nlcmd/internal/safety"
)

// Prompter asks for interactive confirmation before side effects.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	response, err := p.in.ReadString('\n')
	if err != nil {
		return false, err
	}

	switch strings.TrimSpace(strings.ToLower(response)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ConfirmRisky scales the confirmation ceremony with severity. Critical
// commands must be retyped in full plus an explicit acknowledgement; high
// severity demands a typed "yes"; everything else is a plain y/N.
func (p *Prompter) ConfirmRisky(command string, report safety.Report) (bool, error) {
	return p.confirmRisky(command, report, "Run")
}

// ConfirmRiskyCopy is the same ceremony for clipboard copies, so a risky
// command cannot reach the clipboard without the acknowledgement.
func (p *Prompter) ConfirmRiskyCopy(command string, report safety.Report) (bool, error) {
	return p.confirmRisky(command, report, "Copy")
}

func (p *Prompter) confirmRisky(command string, report safety.Report, action string) (bool, error) {
	if !report.IsRisky {
		return p.Confirm(action + " this command?")
	}

	switch report.Severity {
	case safety.Critical:
		fmt.Fprintf(p.out, "This command is rated CRITICAL. Type it again exactly to proceed:\n  %s\n> ", command)
		typed, err := p.in.ReadString('\n')
		if err != nil {
			return false, err
		}
		if strings.TrimSpace(typed) != command {
			return false, nil
		}
		fmt.Fprint(p.out, "Type I UNDERSTAND THE RISK to confirm: ")
		ack, err := p.in.ReadString('\n')
		if err != nil {
			return false, err
		}
		return strings.TrimSpace(ack) == "I UNDERSTAND THE RISK", nil

	case safety.High:
		fmt.Fprint(p.out, "This command is rated HIGH risk. Type yes to proceed: ")
		response, err := p.in.ReadString('\n')
		if err != nil {
			return false, err
		}
		return strings.TrimSpace(strings.ToLower(response)) == "yes", nil

	default:
		return p.Confirm(action + " this command anyway?")
	}
}
