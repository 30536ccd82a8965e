package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdrill/internal/question"
)

var explanationsCmd = &cobra.Command{
	Use:   "explanations",
	Short: "List true/false questions whose answer is X, with their explanations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		missing, _ := cmd.Flags().GetBool("missing")
		out := cmd.OutOrStdout()

		qs, err := question.NewBank(cfg.Bank.Path, cfg.Bank.Blocklist...).Load(nil)
		if err != nil {
			return err
		}

		var picked []question.Question
		for _, q := range question.FilterKind(qs, question.KindTrueFalse) {
			if q.CorrectAnswer != question.AnswerFalse {
				continue
			}
			if missing == (q.Explanation == "") {
				picked = append(picked, q)
			}
		}

		if missing {
			fmt.Fprintf(out, "=== %d X-answer questions without an explanation ===\n\n", len(picked))
		} else {
			fmt.Fprintf(out, "=== %d X-answer questions with an explanation ===\n\n", len(picked))
		}
		for _, q := range picked {
			fmt.Fprintf(out, "Question %s:\n", q.ID)
			fmt.Fprintf(out, "Text: %s\n", q.Text)
			if !missing {
				fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
			}
			fmt.Fprintln(out, "---")
		}
		return nil
	},
}

func init() {
	explanationsCmd.Flags().Bool("missing", false, "List X-answer questions that lack an explanation instead")
}
