package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/neurotrack/internal/resources"
)

func newResourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List curated wellness resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			topics := resources.Topics()
			if asJSON {
				return writeJSON(out, topics)
			}
			for i, t := range topics {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s\n  %s\n", t.Title, t.Description)
				for _, l := range t.Links {
					fmt.Fprintf(out, "  - %s: %s\n", l.Title, l.URL)
				}
			}
			for _, q := range resources.Quotes() {
				fmt.Fprintf(out, "\n%q - %s", q.Text, q.Author)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print as JSON")
	return cmd
}
