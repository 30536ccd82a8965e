// Package config resolves quizdrill settings from defaults, an optional YAML
// file, QUIZDRILL_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/quizdrill/internal/store"
)

const envPrefix = "QUIZDRILL"

type Config struct {
	Bank     BankConfig     `mapstructure:"bank"`
	Progress ProgressConfig `mapstructure:"progress"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

type BankConfig struct {
	Path string `mapstructure:"path"`
	// Blocklist holds ids skipped on top of the built-in one.
	Blocklist []string `mapstructure:"blocklist"`
}

type ProgressConfig struct {
	Path string `mapstructure:"path"`
}

// JournalConfig controls the SQLite answer journal.
type JournalConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

type QuizConfig struct {
	// Count truncates every round to this many questions; 0 keeps the
	// whole subset.
	Count int `mapstructure:"count"`
	// AskCount prompts for the round size before each round.
	AskCount bool `mapstructure:"ask_count"`
}

type UIConfig struct {
	Color bool `mapstructure:"color"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// flagKeys maps persistent flag names onto config keys.
var flagKeys = map[string]string{
	"bank":      "bank.path",
	"progress":  "progress.path",
	"db":        "journal.path",
	"log-level": "log.level",
	"count":     "quiz.count",
}

// Load builds the configuration. configFile may be empty, in which case
// config.yaml is looked up in the user config directory and its absence is
// not an error. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if flags != nil && flags.Changed("no-color") {
		if off, err := flags.GetBool("no-color"); err == nil && off {
			cfg.UI.Color = false
		}
	}
	if cfg.Quiz.Count < 0 {
		return nil, fmt.Errorf("quiz.count must not be negative, got %d", cfg.Quiz.Count)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	dataDir, err := store.DefaultDataDir()
	if err != nil {
		dataDir = "."
	}
	v.SetDefault("bank.path", "questions.json")
	v.SetDefault("bank.blocklist", []string{})
	v.SetDefault("progress.path", filepath.Join(dataDir, "quiz-data.json"))
	v.SetDefault("journal.path", filepath.Join(dataDir, "journal.db"))
	v.SetDefault("journal.enabled", true)
	v.SetDefault("quiz.count", 0)
	v.SetDefault("quiz.ask_count", false)
	v.SetDefault("ui.color", true)
	v.SetDefault("log.level", "warn")
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/quizdrill, falling back to the
// platform user config directory.
func DefaultConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "quizdrill"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "quizdrill"), nil
}
