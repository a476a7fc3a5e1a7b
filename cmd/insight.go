package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInsightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Manage journal entries",
	}

	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Save a journal entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.results.SaveInsight(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			insights, err := e.results.Insights(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(insights) == 0 {
				fmt.Fprintln(out, "No journal entries yet.")
				return nil
			}
			for i, text := range insights {
				fmt.Fprintf(out, "%3d. %s\n", i+1, text)
			}
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}
