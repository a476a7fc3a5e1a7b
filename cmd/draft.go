package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/results"
)

func newAnswerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answer <questionID> <optionID>",
		Short: "Record an answer in the assessment in progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			a, err := e.engine.NewAnswer(args[0], args[1])
			if err != nil {
				return err
			}

			answers, err := recordAnswer(cmd.Context(), e.results, a)
			if err != nil {
				return err
			}

			total := e.engine.Catalog().Len()
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s = %s (%d/%d answered)\n",
				a.QuestionID, a.SelectedOptionID, len(answers), total)
			return nil
		},
	}
}

// recordAnswer upserts a into the saved draft. A draft that cannot be read
// is an error here: saving over it would drop the answers already recorded.
func recordAnswer(ctx context.Context, rs *results.Store, a assessment.Answer) ([]assessment.Answer, error) {
	saved, err := rs.ReadInProgressAnswers(ctx)
	if err != nil {
		return nil, err
	}
	answers := assessment.Upsert(saved, a)
	if err := rs.SaveInProgressAnswers(ctx, answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func newDraftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draft",
		Short: "Show the assessment in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			cat := e.engine.Catalog()
			d := assessment.NewDraft(cat.AllQuestions(), e.results.LoadInProgressAnswers(cmd.Context()))
			if d.Answered() == 0 {
				fmt.Fprintln(out, "No assessment in progress. Start with: neurotrack answer <questionID> <optionID>")
				return nil
			}

			for _, q := range cat.AllQuestions() {
				mark, choice := " ", "-"
				if id, ok := d.Selected(q.ID); ok {
					mark = "✓"
					if o, ok := q.Option(id); ok {
						choice = o.Text
					}
				}
				fmt.Fprintf(out, "%s %-4s %-16s %s\n", mark, q.ID, cat.CategoryDisplayName(q.Category), choice)
			}
			fmt.Fprintf(out, "\n%d/%d answered (%.0f%%)\n", d.Answered(), d.Len(), d.Progress()*100)
			if d.Complete() {
				fmt.Fprintln(out, "All questions answered. Run: neurotrack submit")
			}
			return nil
		},
	}
}

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Score the assessment in progress and save the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx := cmd.Context()
			cat := e.engine.Catalog()
			saved, err := e.results.ReadInProgressAnswers(ctx)
			if err != nil {
				return err
			}
			d := assessment.NewDraft(cat.AllQuestions(), saved)
			if !d.Complete() {
				return fmt.Errorf("assessment incomplete: %d of %d questions answered", d.Answered(), d.Len())
			}

			result := e.engine.Score(d.Answers())
			if err := e.results.AppendResult(ctx, result); err != nil {
				return fmt.Errorf("save result: %w", err)
			}
			printResult(cmd.OutOrStdout(), cat, result)
			return nil
		},
	}
}

func newDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Discard the assessment in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.results.ClearInProgressAnswers(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Assessment in progress discarded.")
			return nil
		},
	}
}
