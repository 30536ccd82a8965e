package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdrill/internal/bankio"
	"github.com/abhisek/quizdrill/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export <out.xlsx>",
	Short: "Write failed, marked and answered questions to a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := progress.NewFileStore(cfg.Progress.Path).Load()

		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("create %s: %w", args[0], err)
		}
		if err := bankio.ExportProgress(f, st); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d failed, %d marked, %d answered\n",
			args[0], st.Failed.Len(), st.Marked.Len(), st.Answered.Len())
		return nil
	},
}
