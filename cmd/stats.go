package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdrill/internal/app"
	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/question"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and answer history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		out := cmd.OutOrStdout()

		st := progress.NewFileStore(cfg.Progress.Path).Load()
		loaded, err := question.NewBank(cfg.Bank.Path, cfg.Bank.Blocklist...).Load(st.Marked)
		if err != nil {
			return err
		}

		trueFalse := len(question.FilterKind(loaded, question.KindTrueFalse))
		fmt.Fprintln(out, "Progress")
		fmt.Fprintln(out, strings.Repeat("\u2500", 40))
		fmt.Fprintf(out, "  %s\n", app.Summary(loaded, st))
		fmt.Fprintf(out, "  %d true/false, %d multiple choice\n", trueFalse, len(loaded)-trueFalse)

		s, ok := openJournal()
		if !ok {
			return nil
		}
		defer s.Close()

		ctx := cmd.Context()
		totals, err := s.HistoryRepo().Totals(ctx)
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "History")
		fmt.Fprintln(out, strings.Repeat("\u2500", 40))
		if totals.Answers == 0 {
			fmt.Fprintln(out, "  No answers recorded yet.")
			return nil
		}
		fmt.Fprintf(out, "  Rounds:    %d (%d finished)\n", totals.Rounds, totals.FinishedRounds)
		fmt.Fprintf(out, "  Answers:   %d\n", totals.Answers)
		fmt.Fprintf(out, "  Accuracy:  %.0f%%\n", totals.Accuracy()*100)
		if !totals.LastActivity.IsZero() {
			fmt.Fprintf(out, "  Last seen: %s\n", totals.LastActivity.Local().Format("2006-01-02 15:04"))
		}

		missed, err := s.HistoryRepo().MostMissed(ctx, limit)
		if err != nil {
			return fmt.Errorf("query most missed: %w", err)
		}
		if len(missed) == 0 {
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-10s  %8s  %6s\n", "Question", "Attempts", "Misses")
		fmt.Fprintln(out, strings.Repeat("\u2500", 28))
		for _, m := range missed {
			fmt.Fprintf(out, "%-10s  %8d  %6d\n", m.QuestionID, m.Attempts, m.Misses)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of most-missed questions to list")
}
