package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oravec/nlcmd/internal/cli"
	"github.com/oravec/nlcmd/internal/engine"
	"github.com/oravec/nlcmd/internal/history"
	"github.com/oravec/nlcmd/internal/safety"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [request]",
	Short: "Resolve a plain-language request into a shell command",
	Long: `Resolve a natural language request into a shell command for your platform.

Examples:
  nlcmd ask "show me my ip address"
  nlcmd ask --run "list all files"
  nlcmd ask --copy "kill chrome"
  nlcmd ask --force-method fuzzy "internet not wrking"
  nlcmd ask --suggest 3 "clean up disk"`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		run, _ := cmd.Flags().GetBool("run")
		copyFlag, _ := cmd.Flags().GetBool("copy")
		force, _ := cmd.Flags().GetString("force-method")
		suggest, _ := cmd.Flags().GetInt("suggest")

		opts, err := parseForce(force)
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if suggest > 0 {
			cands := a.engine.Suggestions(cmd.Context(), question, suggest)
			fmt.Fprint(cmd.OutOrStdout(), a.form.Suggestions(cands))
			return nil
		}

		ch := a.proc.Process(cmd.Context(), question, opts)
		fmt.Fprint(cmd.OutOrStdout(), a.form.Chain(ch))

		if !ch.Success {
			if len(ch.Segments) == 1 && ch.Segments[0].Decision.Err != nil {
				return ch.Segments[0].Decision.Err
			}
			return engine.ErrNoResolution
		}

		var histID string
		if a.hist != nil {
			method := string(ch.Segments[0].Decision.Candidate.Method)
			if ch.Multi {
				method = "chain"
			}
			histID, err = a.hist.Record(cmd.Context(), history.Entry{
				Query:      question,
				Command:    ch.Chained,
				Method:     method,
				Confidence: ch.Confidence,
			})
			if err != nil {
				a.log.Warn("could not record history: " + err.Error())
			}
		}

		report := safety.AnalyzeRisk(ch.Chained)
		if report.IsRisky {
			fmt.Fprint(cmd.OutOrStdout(), a.form.Risk(report))
		}

		prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

		if copyFlag {
			ok := true
			if report.IsRisky {
				ok, err = prompter.ConfirmRiskyCopy(ch.Chained, report)
				if err != nil {
					return err
				}
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "copy aborted")
			} else {
				if err := cli.CopyToClipboard(ch.Chained); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "copied to clipboard")
			}
		}

		if run {
			ok, err := prompter.ConfirmRisky(ch.Chained, report)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			runner := cli.NewRunner(a.fam, os.Stdout, os.Stderr)
			if err := runner.Run(cmd.Context(), ch.Chained); err != nil {
				return fmt.Errorf("command failed: %w", err)
			}
			if a.hist != nil && histID != "" {
				if err := a.hist.MarkExecuted(cmd.Context(), histID); err != nil {
					a.log.Warn("could not mark history entry executed: " + err.Error())
				}
			}
		}
		return nil
	},
}

// parseForce maps the --force-method flag onto a cascade restriction.
func parseForce(force string) (engine.Options, error) {
	switch force {
	case "":
		return engine.Options{}, nil
	case "ml":
		return engine.Options{ForceMethod: engine.MethodML}, nil
	case "fuzzy":
		return engine.Options{ForceMethod: engine.MethodFuzzy}, nil
	case "rule":
		return engine.Options{ForceMethod: engine.MethodRule}, nil
	}
	return engine.Options{}, fmt.Errorf("unknown force method %q (want ml, fuzzy or rule)", force)
}

func init() {
	askCmd.Flags().Bool("run", false, "execute the resolved command after confirmation")
	askCmd.Flags().Bool("copy", false, "copy the resolved command to the clipboard")
	askCmd.Flags().String("force-method", "", "restrict resolution to one strategy: ml, fuzzy or rule")
	askCmd.Flags().Int("suggest", 0, "show the top N alternative commands instead of resolving")

	rootCmd.AddCommand(askCmd)
}
