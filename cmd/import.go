package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdrill/internal/bankio"
	"github.com/abhisek/quizdrill/internal/question"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv|file.xlsx>",
	Short: "Convert a spreadsheet of questions into a bank file",
	Long: "Convert a spreadsheet of questions into a bank file. The header row names " +
		"the columns: id, type, text, options, correctAnswer, explanation. Options are " +
		"a JSON object of key to label. Rows that cannot be parsed are skipped.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")
		force, _ := cmd.Flags().GetBool("force")
		if outPath == "" {
			outPath = cfg.Bank.Path
		}

		if _, err := os.Stat(outPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", outPath, err)
		}

		res, err := bankio.ImportFile(args[0])
		if err != nil {
			return err
		}
		if len(res.Questions) == 0 {
			return fmt.Errorf("no questions found in %s", args[0])
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		if err := bankio.WriteBank(f, res.Questions); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", outPath, err)
		}

		mc := len(question.FilterKind(res.Questions, question.KindMultipleChoice))
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Wrote %s: %d questions (%d multiple choice, %d true/false)\n",
			outPath, len(res.Questions), mc, len(res.Questions)-mc)
		if len(res.Skipped) > 0 {
			fmt.Fprintf(out, "Skipped %d rows:\n", len(res.Skipped))
			for _, s := range res.Skipped {
				fmt.Fprintf(out, "  %v\n", s)
			}
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("out", "", "Output bank file (default: the configured bank path)")
	importCmd.Flags().Bool("force", false, "Overwrite an existing bank file")
}
