package bankio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/question"
)

func TestExportProgress(t *testing.T) {
	st := progress.NewState()
	st.RecordWrong(question.Question{ID: "001", Kind: question.KindTrueFalse, Text: "=SUM(A1)", CorrectAnswer: "X", Explanation: "formula"})
	st.RecordWrong(question.Question{ID: "002", Kind: question.KindMultipleChoice, Text: "pick", CorrectAnswer: "A",
		Options: question.Options{{Key: "A", Label: "a"}}})
	st.Mark(question.Question{ID: "003", Kind: question.KindTrueFalse, Text: "marked", CorrectAnswer: "O"})

	var buf bytes.Buffer
	require.NoError(t, ExportProgress(&buf, st))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetFailed, SheetMarked, SheetAnswered}, f.GetSheetList())

	failed, err := f.GetRows(SheetFailed)
	require.NoError(t, err)
	require.Len(t, failed, 3)
	assert.Equal(t, "ID", failed[0][0])
	assert.Equal(t, "001", failed[1][0])
	assert.Equal(t, "'=SUM(A1)", failed[1][2])
	assert.Equal(t, `{"A":"a"}`, failed[2][3])

	marked, err := f.GetRows(SheetMarked)
	require.NoError(t, err)
	assert.Len(t, marked, 2)

	answered, err := f.GetRows(SheetAnswered)
	require.NoError(t, err)
	assert.Len(t, answered, 1, "header only")
}

func TestExportProgress_ReimportsFailedSheet(t *testing.T) {
	st := progress.NewState()
	st.RecordWrong(question.Question{ID: "005", Kind: question.KindMultipleChoice, Text: "pick", CorrectAnswer: "B",
		Options: question.Options{{Key: "B", Label: "bee"}, {Key: "A", Label: "ay"}}})

	var buf bytes.Buffer
	require.NoError(t, ExportProgress(&buf, st))

	res, err := ReadXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, st.Failed.Questions()[0], res.Questions[0])
}
