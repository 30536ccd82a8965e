package bankio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdrill/internal/question"
)

func TestWriteBank_SortsAndValidates(t *testing.T) {
	qs := []question.Question{
		{ID: "002", Kind: question.KindTrueFalse, Text: "t2", CorrectAnswer: "O"},
		{ID: "010", Kind: question.KindMultipleChoice, Text: "m10", CorrectAnswer: "A",
			Options: question.Options{{Key: "B", Label: "b"}, {Key: "A", Label: "a"}}},
		{ID: "001", Kind: question.KindTrueFalse, Text: "t1", CorrectAnswer: "X", Explanation: "why"},
		{ID: "003", Kind: question.KindMultipleChoice, Text: "m3", CorrectAnswer: "A",
			Options: question.Options{{Key: "A", Label: "a"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBank(&buf, qs))

	parsed, err := question.Parse(buf.Bytes())
	require.NoError(t, err)
	var ids []string
	for _, q := range parsed {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"003", "010", "001", "002"}, ids)
	assert.Equal(t, "B", parsed[1].Options[0].Key)
	assert.True(t, strings.HasPrefix(buf.String(), "[\n  {"))
	assert.Equal(t, "002", qs[0].ID, "input left untouched")
}

func TestWriteBank_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBank(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteBank_RejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBank(&buf, []question.Question{{ID: "1", Kind: "essay", Text: "t", CorrectAnswer: "A"}})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
