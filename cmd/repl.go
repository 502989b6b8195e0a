package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oravec/nlcmd/internal/cli"
	"github.com/oravec/nlcmd/internal/engine"
	"github.com/oravec/nlcmd/internal/history"
	"github.com/oravec/nlcmd/internal/safety"
)

// sessionHelp lists the in-session commands, shown on "help".
const sessionHelp = `Session commands:
  :run     execute the last resolved command
  :copy    copy the last resolved command to the clipboard
  help     show this summary
  quit     leave the session (also exit, :quit, :q)
`

// replCmd represents the interactive session command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive session: type requests, get commands",
	Long: `Start an interactive session. Each line is resolved like "nlcmd ask".

Session commands:
  :run     execute the last resolved command
  :copy    copy the last resolved command to the clipboard
  help     show the session commands
  quit     leave the session`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		out := cmd.OutOrStdout()
		scanner := bufio.NewScanner(cmd.InOrStdin())
		prompter := cli.NewPrompter(cmd.InOrStdin(), out)
		runner := cli.NewRunner(a.fam, out, cmd.ErrOrStderr())

		fmt.Fprintf(out, "nlcmd interactive session (%s commands). Type help for session commands, quit to exit.\n", a.fam)

		var last string
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
				continue
			case line == ":quit" || line == ":q" || line == "quit" || line == "exit":
				return scanner.Err()
			case line == ":help" || line == "help":
				fmt.Fprint(out, sessionHelp)
				continue
			case line == ":copy":
				if last == "" {
					fmt.Fprintln(out, "nothing resolved yet")
					continue
				}
				report := safety.AnalyzeRisk(last)
				if report.IsRisky {
					fmt.Fprint(out, a.form.Risk(report))
					ok, err := prompter.ConfirmRiskyCopy(last, report)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(out, "aborted")
						continue
					}
				}
				if err := cli.CopyToClipboard(last); err != nil {
					fmt.Fprintf(out, "copy failed: %v\n", err)
					continue
				}
				fmt.Fprintln(out, "copied to clipboard")
				continue
			case line == ":run":
				if last == "" {
					fmt.Fprintln(out, "nothing resolved yet")
					continue
				}
				report := safety.AnalyzeRisk(last)
				if report.IsRisky {
					fmt.Fprint(out, a.form.Risk(report))
				}
				ok, err := prompter.ConfirmRisky(last, report)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "aborted")
					continue
				}
				if err := runner.Run(cmd.Context(), last); err != nil {
					fmt.Fprintf(out, "command failed: %v\n", err)
				}
				continue
			}

			ch := a.proc.Process(cmd.Context(), line, engine.Options{})
			fmt.Fprint(out, a.form.Chain(ch))
			if !ch.Success {
				continue
			}
			last = ch.Chained
			if a.hist != nil {
				method := string(ch.Segments[0].Decision.Candidate.Method)
				if ch.Multi {
					method = "chain"
				}
				if _, err := a.hist.Record(cmd.Context(), history.Entry{
					Query:      line,
					Command:    ch.Chained,
					Method:     method,
					Confidence: ch.Confidence,
				}); err != nil {
					a.log.Warn("could not record history: " + err.Error())
				}
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
