package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "Show recently resolved commands",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("limit")

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if a.hist == nil {
			return errors.New("history is disabled or unavailable")
		}
		entries, err := a.hist.Recent(cmd.Context(), n)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), a.form.History(entries))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:          "clear",
	Short:        "Delete all recorded resolutions",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if a.hist == nil {
			return errors.New("history is disabled or unavailable")
		}
		if err := a.hist.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of entries to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
