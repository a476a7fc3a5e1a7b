package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/neurotrack/internal/config"
	"github.com/abhisek/neurotrack/internal/logging"
	"github.com/abhisek/neurotrack/internal/results"
	"github.com/abhisek/neurotrack/internal/scoring"
	"github.com/abhisek/neurotrack/internal/screens"
	"github.com/abhisek/neurotrack/internal/store"
)

// NewRootCmd builds the neurotrack command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "neurotrack",
		Short: "Mental health self-assessment in the terminal",
		Long: "NeuroTrack runs a short questionnaire, scores it into category and risk\n" +
			"results, and keeps your history and journal on this machine.\n\n" +
			"It is a screening aid, not a diagnosis.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides NEUROTRACK_DB env var)")
	flags.String("config", "", "Path to a YAML config file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Bool("ephemeral", false, "Keep data in memory for this run only")

	rootCmd.AddCommand(
		newQuestionsCmd(),
		newAnswerCmd(),
		newDraftCmd(),
		newSubmitCmd(),
		newDiscardCmd(),
		newResultsCmd(),
		newHistoryCmd(),
		newInsightCmd(),
		newModelCmd(),
		newResourcesCmd(),
		newResetCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// env is what a command needs to reach stored data.
type env struct {
	cfg     config.Config
	log     *zap.Logger
	results *results.Store
	engine  *scoring.Engine
	closers []func() error
}

func (e *env) deps() screens.Deps {
	return screens.Deps{Results: e.results, Engine: e.engine, Log: e.log}
}

// Close releases the backend and flushes the logger.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i]()
	}
}

// openEnv loads configuration, builds the logger and opens the backend. The
// TUI logs to a file so output does not corrupt the screen.
func openEnv(cmd *cobra.Command, tui bool) (*env, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: cfgFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logOpts := logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File}
	switch {
	case tui && logOpts.File == "":
		dir, err := store.DataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		logOpts.File = filepath.Join(dir, "neurotrack.log")
	case !tui && !levelChosen(cmd):
		// Keep routine CLI output free of info logs.
		logOpts.Level = "warn"
	}
	log, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	e := &env{cfg: cfg, log: log}
	e.closers = append(e.closers, func() error { return log.Sync() })

	backend, err := openBackend(cmd, cfg, e)
	if err != nil {
		e.Close()
		return nil, err
	}

	jitter, err := scoring.JitterFromMode(cfg.Scoring.Jitter, cfg.Scoring.Seed)
	if err != nil {
		e.Close()
		return nil, err
	}

	e.results = results.New(backend, log)
	e.engine = scoring.NewEngine(scoring.Config{Jitter: jitter, Logger: log.Named("scoring")})
	return e, nil
}

func openBackend(cmd *cobra.Command, cfg config.Config, e *env) (store.Backend, error) {
	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		e.log.Info("using in-memory storage")
		return store.NewMemory(), nil
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	e.closers = append(e.closers, s.Close)
	e.log.Debug("database opened", zap.String("path", dbPath))
	return s, nil
}

// resolveDBPath returns the configured database path (--db flag, then
// NEUROTRACK_DB, then the config file), falling back to the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

func levelChosen(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		return true
	}
	return os.Getenv(config.EnvPrefix+"_LOG_LEVEL") != ""
}
