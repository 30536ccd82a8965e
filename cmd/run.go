package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdrill/internal/app"
	"github.com/abhisek/quizdrill/internal/console"
	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/question"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive trainer (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrainer(cmd)
	},
}

// runTrainer wires the bank, progress file and journal, and hands the
// terminal to the trainer loop.
func runTrainer(cmd *cobra.Command) error {
	opts := app.Options{
		Bank:      question.NewBank(cfg.Bank.Path, cfg.Bank.Blocklist...),
		Progress:  progress.NewFileStore(cfg.Progress.Path),
		Console:   console.New(cmd.InOrStdin(), cmd.OutOrStdout(), useColor(cmd)),
		RoundSize: cfg.Quiz.Count,
		AskCount:  cfg.Quiz.AskCount,
	}

	if s, ok := openJournal(); ok {
		defer s.Close()
		opts.Events = s.EventRepo()
	}

	return app.Run(cmd.Context(), opts)
}
