package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oravec/nlcmd/internal/cli"
	"github.com/oravec/nlcmd/internal/platform"
)

// checkCmd reports whether the tools resolved commands rely on are present.
var checkCmd = &cobra.Command{
	Use:          "check",
	Short:        "Check the shell, git and clipboard tooling",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fam, err := platform.Parse(viper.GetString("os"))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		checker := cli.NewDependencyChecker(fam)

		fmt.Fprintf(out, "Tool status (%s family):\n", fam)
		for _, dep := range checker.CheckAll() {
			icon := "+"
			if !dep.Installed {
				icon = "-"
			}
			fmt.Fprintf(out, "  [%s] %s\n", icon, dep.Name)
			if dep.Message != "" {
				fmt.Fprintf(out, "      %s\n", dep.Message)
			}
		}

		if missing := checker.CheckMissing(); len(missing) > 0 {
			for _, dep := range missing {
				if dep.Required {
					return fmt.Errorf("required tool %s is missing", dep.Name)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
