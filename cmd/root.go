package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/abhisek/quizdrill/internal/config"
	"github.com/abhisek/quizdrill/internal/logger"
	"github.com/abhisek/quizdrill/internal/store"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "quizdrill",
	Short: "Command-line quiz trainer",
	Long: "quizdrill drills multiple-choice and true/false questions from a JSON bank, " +
		"remembering what you answered, failed, and marked across sessions.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrainer(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/quizdrill/config.yaml)")
	pf.String("bank", "", "Path to the question bank JSON file")
	pf.String("progress", "", "Path to the progress file")
	pf.String("db", "", "Path to the SQLite answer journal")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")
	pf.Bool("no-color", false, "Disable colored output")
	pf.Int("count", 0, "Questions per round (0 = all)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(explanationsCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := logger.Initialize(c.Log.Level, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	cfg = c
	return nil
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command) bool {
	return cfg.UI.Color && isTerminal(cmd.OutOrStdout())
}

// openJournal opens the answer journal if it is enabled. A journal that
// cannot be opened is logged and skipped.
func openJournal() (*store.Store, bool) {
	if !cfg.Journal.Enabled {
		return nil, false
	}
	if err := store.EnsureDir(cfg.Journal.Path); err != nil {
		logger.Get().Warn("journal disabled", zap.String("path", cfg.Journal.Path), zap.Error(err))
		return nil, false
	}
	s, err := store.Open(cfg.Journal.Path)
	if err != nil {
		logger.Get().Warn("journal disabled", zap.String("path", cfg.Journal.Path), zap.Error(err))
		return nil, false
	}
	return s, true
}
