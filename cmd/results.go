package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/neurotrack/internal/assessment"
	"github.com/abhisek/neurotrack/internal/catalog"
	"github.com/abhisek/neurotrack/internal/scoring"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/trends"
)

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the latest assessment result",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			result, ok, err := e.results.LatestResult(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON && !ok:
				fmt.Fprintln(out, "null")
			case asJSON:
				return writeJSON(out, result)
			case !ok:
				fmt.Fprintln(out, "No assessment results yet. Run `neurotrack` to take one.")
			default:
				printResult(out, e.engine.Catalog(), result)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print as JSON")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List every assessment with trends",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			e, err := openEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			all, err := e.results.ListResults(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, all)
			}
			if len(all) == 0 {
				fmt.Fprintln(out, "No assessment history yet.")
				return nil
			}

			cat := e.engine.Catalog()
			fmt.Fprintf(out, "%-3s  %-16s  %5s  %-18s  %s\n", "#", "Completed", "Score", "Result", "Risk")
			fmt.Fprintln(out, strings.Repeat("─", 60))
			for _, p := range trends.ScoreTrend(all) {
				r := all[p.Index-1]
				fmt.Fprintf(out, "%-3d  %-16s  %5d  %-18s  %s\n",
					p.Index, p.Date.Local().Format("2006-01-02 15:04"), p.Score,
					r.Prediction.Label, p.Risk.DisplayName())
			}

			s := trends.Summarize(all)
			fmt.Fprintf(out, "\n%d assessments, average %.1f, best %d, worst %d\n",
				s.Count, s.AverageScore, s.BestScore, s.WorstScore)

			counts := trends.RiskCounts(all)
			parts := make([]string, 0, len(counts))
			for _, level := range assessment.AllRiskLevels() {
				parts = append(parts, fmt.Sprintf("%s %d", level.DisplayName(), counts[level]))
			}
			fmt.Fprintf(out, "Risk levels: %s\n", strings.Join(parts, ", "))

			if changes := trends.CategoryChanges(all); len(changes) > 0 {
				fmt.Fprintln(out, "\nChange since first assessment:")
				for _, c := range changes {
					trend := "unchanged"
					switch {
					case c.Improved():
						trend = "improved"
					case !c.Unchanged():
						trend = "worse"
					}
					fmt.Fprintf(out, "  %-16s %5.1f%% -> %5.1f%%  %+6.1f  %s\n",
						cat.CategoryDisplayName(c.Category), c.First, c.Latest, c.Change, trend)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print as JSON")
	return cmd
}

func printResult(out io.Writer, cat *catalog.Catalog, r assessment.AssessmentResult) {
	fmt.Fprintf(out, "Completed:   %s\n", r.CompletedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Score:       %d / %d\n", r.Score, cat.TotalMaxScore())
	fmt.Fprintf(out, "Result:      %s\n", r.Prediction.Label)
	fmt.Fprintf(out, "Risk:        %s (%.0f%% confidence)\n", r.Prediction.RiskLevel.DisplayName(), r.Prediction.Probability*100)
	fmt.Fprintln(out)
	for _, cs := range r.CategoryScores {
		fmt.Fprintf(out, "  %-16s %3d/%-3d %5.1f%%  %s\n",
			cat.CategoryDisplayName(cs.Category), cs.Score, cs.MaxScore, cs.Percentage,
			scoring.Interpret(cs.Category, cs.Percentage))
	}
	fmt.Fprintln(out, "\nRecommendations:")
	for _, rec := range scoring.Recommendations(r.Prediction.RiskLevel) {
		fmt.Fprintf(out, "  - %s: %s\n", rec.Title, rec.Description)
	}
	fmt.Fprintf(out, "\n%s\n", screens.Disclaimer)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
