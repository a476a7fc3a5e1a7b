// Package config loads neurotrack settings from flags, environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable (NEUROTRACK_DB, ...).
const EnvPrefix = "NEUROTRACK"

// Config is the resolved configuration.
type Config struct {
	DB      string        `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Scoring ScoringConfig `mapstructure:"scoring"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
	File   string `mapstructure:"file"`   // empty: stderr for CLI, data dir for TUI
}

// ScoringConfig controls prediction jitter.
type ScoringConfig struct {
	Jitter string `mapstructure:"jitter"` // random or fixed
	Seed   uint64 `mapstructure:"seed"`   // 0 picks a random seed
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: "json"},
		Scoring: ScoringConfig{Jitter: "random"},
	}
}

// Options tells Load where to look.
type Options struct {
	File  string         // explicit config file; must exist when set
	Flags *pflag.FlagSet // flags bound by key name ("db", "log-level")
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"db":        "db",
	"log-level": "log.level",
}

// Load resolves configuration with precedence flag > env > file > default.
func Load(opts Options) (Config, error) {
	v := viper.New()

	def := Defaults()
	v.SetDefault("db", def.DB)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("scoring.jitter", def.Scoring.Jitter)
	v.SetDefault("scoring.seed", def.Scoring.Seed)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", opts.File, err)
		}
	} else if dir, err := Dir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	switch c.Scoring.Jitter {
	case "random", "fixed":
	default:
		return fmt.Errorf("scoring.jitter must be random or fixed, got %q", c.Scoring.Jitter)
	}
	return nil
}

// Dir returns $XDG_CONFIG_HOME/neurotrack, falling back to
// ~/.config/neurotrack.
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "neurotrack"), nil
}
