// Package bankio converts spreadsheets of questions into bank files and
// exports progress for offline review.
package bankio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdrill/internal/logger"
	"github.com/abhisek/quizdrill/internal/question"
)

var (
	ErrMissingColumn     = errors.New("missing required column")
	ErrUnsupportedFormat = errors.New("unsupported import format")
	ErrEmptySheet        = errors.New("no header row")
)

// Column names recognised in the header row (case-insensitive).
const (
	ColID            = "id"
	ColType          = "type"
	ColText          = "text"
	ColOptions       = "options"
	ColCorrectAnswer = "correctanswer"
	ColExplanation   = "explanation"
)

var headerAliases = map[string]string{
	"correct_answer": ColCorrectAnswer,
	"correct answer": ColCorrectAnswer,
	"answer":         ColCorrectAnswer,
	"question":       ColText,
}

// RowError describes a skipped data row. Row is 1-based and counts the
// header.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// Result is the outcome of a best-effort import.
type Result struct {
	Questions []question.Question
	Skipped   []RowError
}

// ImportFile reads a .csv or .xlsx file.
func ImportFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// ReadCSV imports questions from CSV with a header row.
func ReadCSV(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRows(rows)
}

// ReadXLSX imports questions from the first sheet of a workbook.
func ReadXLSX(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	cols := indexHeader(rows[0])
	for _, required := range []string{ColID, ColText, ColCorrectAnswer} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	res := &Result{}
	seen := make(map[string]bool)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blank(row) {
			continue
		}
		q, err := parseRow(cols, row)
		if err == nil && seen[q.ID] {
			err = fmt.Errorf("duplicate id %s", q.ID)
		}
		if err != nil {
			logger.Get().Warn("skipping row", zap.Int("row", rowNum), zap.Error(err))
			res.Skipped = append(res.Skipped, RowError{Row: rowNum, Err: err})
			continue
		}
		seen[q.ID] = true
		res.Questions = append(res.Questions, q)
	}
	return res, nil
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(cols map[string]int, row []string, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseRow(cols map[string]int, row []string) (question.Question, error) {
	q := question.Question{
		ID:            PadID(cell(cols, row, ColID)),
		Text:          cell(cols, row, ColText),
		CorrectAnswer: cell(cols, row, ColCorrectAnswer),
		Explanation:   cell(cols, row, ColExplanation),
	}
	if q.ID == "" {
		return q, errors.New("empty id")
	}
	if q.Text == "" {
		return q, errors.New("empty text")
	}

	if raw := cell(cols, row, ColOptions); raw != "" {
		if err := q.Options.UnmarshalJSON([]byte(raw)); err != nil {
			return q, fmt.Errorf("options: %w", err)
		}
	}

	if t := cell(cols, row, ColType); t != "" {
		kind, err := question.ParseKind(t)
		if err != nil {
			return q, err
		}
		q.Kind = kind
	} else if len(q.Options) > 0 {
		q.Kind = question.KindMultipleChoice
	} else {
		q.Kind = question.KindTrueFalse
	}

	q.CorrectAnswer = strings.ToUpper(q.CorrectAnswer)
	switch q.Kind {
	case question.KindTrueFalse:
		q.Options = nil
		if q.CorrectAnswer != question.AnswerTrue && q.CorrectAnswer != question.AnswerFalse {
			return q, fmt.Errorf("true/false answer must be O or X, got %q", q.CorrectAnswer)
		}
	case question.KindMultipleChoice:
		if len(q.Options) == 0 {
			return q, errors.New("multiple-choice question without options")
		}
		if _, ok := q.Options.Label(q.CorrectAnswer); !ok {
			return q, fmt.Errorf("answer %q is not an option key", q.CorrectAnswer)
		}
	}
	return q, nil
}

// PadID left-pads numeric ids to three digits ("7" -> "007"). Other ids
// are returned unchanged.
func PadID(id string) string {
	if len(id) == 0 || len(id) >= 3 || strings.Trim(id, "0123456789") != "" {
		return id
	}
	return strings.Repeat("0", 3-len(id)) + id
}
