package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/neurotrack/internal/catalog"
)

func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire (optionally for one category)",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			cat := catalog.Default()

			questions := cat.AllQuestions()
			if category != "" {
				if _, ok := cat.Category(catalog.CategoryID(category)); !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				questions = cat.QuestionsForCategory(catalog.CategoryID(category))
			}

			out := cmd.OutOrStdout()
			for _, q := range questions {
				fmt.Fprintf(out, "%-4s [%s] %s\n", q.ID, cat.CategoryDisplayName(q.Category), q.Text)
				for _, o := range q.Options {
					fmt.Fprintf(out, "       %-7s %-26s (%d)\n", o.ID, o.Text, o.Value)
				}
			}
			fmt.Fprintln(out, strings.Repeat("─", 60))
			fmt.Fprintf(out, "%d questions, max score %d\n", len(questions), maxScore(questions))
			return nil
		},
	}
	cmd.Flags().String("category", "", "Filter by category (depression, anxiety, attention, stress, lifestyle)")
	return cmd
}

func maxScore(questions []catalog.Question) int {
	total := 0
	for _, q := range questions {
		total += q.MaxValue()
	}
	return total
}
