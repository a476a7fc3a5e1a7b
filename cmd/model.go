package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/neurotrack/internal/modelinfo"
)

func newModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "model",
		Short: "Show the model card",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			best := modelinfo.BestModel()

			fmt.Fprintf(out, "%-14s  %8s  %9s  %6s  %6s\n", "Model", "Accuracy", "Precision", "Recall", "F1")
			fmt.Fprintln(out, strings.Repeat("─", 52))
			for _, m := range modelinfo.Models() {
				mark := ""
				if m.Name == best.Name {
					mark = "  *"
				}
				fmt.Fprintf(out, "%-14s  %8.3f  %9.3f  %6.3f  %6.3f%s\n",
					m.Name, m.Accuracy, m.Precision, m.Recall, m.F1, mark)
			}

			fmt.Fprintln(out, "\nFeature importance:")
			for _, f := range modelinfo.FeatureImportances() {
				bar := strings.Repeat("█", int(f.Importance*100+0.5)/2)
				fmt.Fprintf(out, "  %-24s %4.2f  %s\n", f.Name, f.Importance, bar)
			}
			fmt.Fprintln(out, "\nFigures are illustrative. Results use fixed score bands.")
		},
	}
}
