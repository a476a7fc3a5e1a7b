package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG_CONFIG_HOME at an empty dir and clears NEUROTRACK_* vars.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"NEUROTRACK_DB", "NEUROTRACK_LOG_LEVEL", "NEUROTRACK_LOG_FORMAT", "NEUROTRACK_SCORING_JITTER", "NEUROTRACK_SCORING_SEED"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_FileEnvFlagPrecedence(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "neurotrack"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "neurotrack", "config.yaml"), []byte(`
db: /from/file.db
log:
  level: warn
  format: console
scoring:
  jitter: fixed
  seed: 7
`), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/from/file.db", cfg.DB)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "fixed", cfg.Scoring.Jitter)
	assert.Equal(t, uint64(7), cfg.Scoring.Seed)

	t.Setenv("NEUROTRACK_DB", "/from/env.db")
	t.Setenv("NEUROTRACK_LOG_LEVEL", "debug")
	cfg, err = Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DB)
	assert.Equal(t, "debug", cfg.Log.Level)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db", "", "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse([]string{"--db", "/from/flag.db"}))

	cfg, err = Load(Options{Flags: fs})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.db", cfg.DB)
	assert.Equal(t, "debug", cfg.Log.Level, "unset flag must not override env")
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: /custom.db\n"), 0o644))

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "/custom.db", cfg.DB)

	_, err = Load(Options{File: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("NEUROTRACK_SCORING_JITTER", "chaotic")
	_, err := Load(Options{})
	assert.ErrorContains(t, err, "scoring.jitter")
}
