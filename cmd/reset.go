package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdrill/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear answered and failed history",
	Long: "Clear answered and failed history. Marked questions stay hidden unless " +
		"--all is given.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		ps := progress.NewFileStore(cfg.Progress.Path)
		st := ps.Load()
		if all {
			st.ResetAll()
		} else {
			st.Reset()
		}
		if err := ps.Save(st); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if all {
			fmt.Fprintln(out, "All history cleared; every question is available again.")
		} else {
			fmt.Fprintf(out, "History cleared; %d marked questions still stay hidden.\n", st.Marked.Len())
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also clear marked questions")
}
