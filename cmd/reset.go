package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all assessments, journal entries and saved progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			out := cmd.OutOrStdout()

			if !yes {
				fmt.Fprint(out, "This permanently deletes all NeuroTrack data. Type 'yes' to continue: ")
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if strings.TrimSpace(strings.ToLower(line)) != "yes" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.results.WipeAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "All data deleted.")
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
