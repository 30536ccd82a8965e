package bankio

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/question"
)

// Sheet names of a progress export.
const (
	SheetFailed   = "Failed"
	SheetMarked   = "Marked"
	SheetAnswered = "Answered"
)

var exportHeaders = []any{"ID", "Type", "Question", "Options", "Correct answer", "Explanation"}

// ExportProgress writes a workbook with one sheet per progress set.
func ExportProgress(w io.Writer, st *progress.State) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		set  *progress.Set
	}{
		{SheetFailed, st.Failed},
		{SheetMarked, st.Marked},
		{SheetAnswered, st.Answered},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s.name, s.set.Questions()); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, qs []question.Question) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("stream writer for %s: %w", sheet, err)
	}
	if err := sw.SetRow("A1", exportHeaders); err != nil {
		return fmt.Errorf("write header of %s: %w", sheet, err)
	}
	for i, q := range qs {
		var options string
		if len(q.Options) > 0 {
			raw, err := q.Options.MarshalJSON()
			if err != nil {
				return fmt.Errorf("encode options of %s: %w", q.ID, err)
			}
			options = string(raw)
		}
		row := []any{
			q.ID,
			string(q.Kind),
			sanitizeForExcel(q.Text),
			options,
			q.CorrectAnswer,
			sanitizeForExcel(q.Explanation),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+2, sheet, err)
		}
	}
	return sw.Flush()
}

// sanitizeForExcel keeps spreadsheet apps from evaluating text as a formula.
func sanitizeForExcel(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
