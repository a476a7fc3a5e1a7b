package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/neurotrack/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	e.log.Info("starting tui")
	return app.Run(e.deps())
}
