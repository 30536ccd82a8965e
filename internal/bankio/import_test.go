package bankio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/quizdrill/internal/question"
)

const sampleCSV = `id,type,text,options,correctAnswer,explanation
1,multiple-choice,Pick one,"{""C"":""cee"",""A"":""ay"",""B"":""bee""}",a,
12,true-false,The sky is green,,x,It is blue
034,tf,Blocked later,,O,
`

func TestReadCSV(t *testing.T) {
	res, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Empty(t, res.Skipped)
	require.Len(t, res.Questions, 3)

	mc := res.Questions[0]
	assert.Equal(t, "001", mc.ID)
	assert.Equal(t, question.KindMultipleChoice, mc.Kind)
	assert.Equal(t, "A", mc.CorrectAnswer)
	assert.Equal(t, question.Options{{Key: "C", Label: "cee"}, {Key: "A", Label: "ay"}, {Key: "B", Label: "bee"}}, mc.Options)

	tf := res.Questions[1]
	assert.Equal(t, "012", tf.ID)
	assert.Equal(t, question.KindTrueFalse, tf.Kind)
	assert.Equal(t, "X", tf.CorrectAnswer)
	assert.Equal(t, "It is blue", tf.Explanation)
	assert.True(t, tf.ShowsExplanation())

	assert.Equal(t, "034", res.Questions[2].ID)
}

func TestReadCSV_SkipsBadRows(t *testing.T) {
	input := `ID,Text,Options,Correct_Answer
1,no options but looks like mc,{not json},A
2,answer not an option,"{""A"":""x""}",B
3,bad true/false,,maybe
,missing id,,O
4,,,O
5,fine,,O
5,duplicate,,X

`
	res, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, res.Questions, 1)
	assert.Equal(t, "005", res.Questions[0].ID)

	var rows []int
	for _, s := range res.Skipped {
		rows = append(rows, s.Row)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6, 8}, rows)
}

func TestReadCSV_InfersKind(t *testing.T) {
	input := "id,text,options,correctAnswer\n1,mc,\"{\"\"A\"\":\"\"a\"\"}\",A\n2,tf,,o\n"

	res, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, res.Questions, 2)

	assert.Equal(t, question.KindMultipleChoice, res.Questions[0].Kind)
	assert.Equal(t, question.KindTrueFalse, res.Questions[1].Kind)
	assert.Equal(t, "O", res.Questions[1].CorrectAnswer)
}

func TestReadCSV_MissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("id,type,text\n1,tf,hello\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"id", "type", "text", "options", "correctAnswer", "explanation"},
		{"7", "multiple-choice", "Which?", `{"B":"bee","A":"ay"}`, "B", ""},
		{"8", "true-false", "False claim", "", "X", "Because."},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	res, err := ReadXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, res.Questions, 2)

	assert.Equal(t, "007", res.Questions[0].ID)
	assert.Equal(t, "B", res.Questions[0].Options[0].Key)
	assert.Equal(t, "Because.", res.Questions[1].Explanation)
}

func TestImportFile_Dispatch(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "bank.CSV")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o644))

	res, err := ImportFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, res.Questions, 3)

	txt := filepath.Join(dir, "bank.txt")
	require.NoError(t, os.WriteFile(txt, []byte(sampleCSV), 0o644))
	_, err = ImportFile(txt)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ImportFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestPadID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1", "001"},
		{"42", "042"},
		{"034", "034"},
		{"1234", "1234"},
		{"a1", "a1"},
		{"-1", "-1"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PadID(tt.in))
		})
	}
}
