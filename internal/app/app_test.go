package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdrill/internal/console"
	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/question"
)

type fixture struct {
	bankPath string
	store    *progress.FileStore
	out      bytes.Buffer
}

func newFixture(t *testing.T, qs []question.Question) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		bankPath: filepath.Join(dir, "questions.json"),
		store:    progress.NewFileStore(filepath.Join(dir, "quiz-data.json")),
	}
	if qs != nil {
		raw, err := json.Marshal(qs)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(f.bankPath, raw, 0o644))
	}
	return f
}

func (f *fixture) run(t *testing.T, mutate func(*Options), input ...string) error {
	t.Helper()
	opts := Options{
		Bank:     question.NewBank(f.bankPath),
		Progress: f.store,
		Console:  console.New(strings.NewReader(strings.Join(input, "\n")+"\n"), &f.out, false),
		Rand:     rand.New(rand.NewPCG(3, 4)),
	}
	if mutate != nil {
		mutate(&opts)
	}
	return Run(context.Background(), opts)
}

func (f *fixture) saved(t *testing.T) *progress.State {
	t.Helper()
	st, err := f.store.Read()
	require.NoError(t, err)
	return st
}

func trueFalseBank(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:            fmt.Sprintf("%03d", i+1),
			Kind:          question.KindTrueFalse,
			Text:          fmt.Sprintf("statement %d", i+1),
			CorrectAnswer: question.AnswerTrue,
		}
	}
	return qs
}

func TestRun_ExitImmediately(t *testing.T) {
	f := newFixture(t, trueFalseBank(2))

	require.NoError(t, f.run(t, nil, "q"))

	assert.Contains(t, f.out.String(), "Quiz over, thanks for practicing.")
	assert.Contains(t, f.out.String(), "Available questions: 2")
}

func TestRun_EOFExits(t *testing.T) {
	f := newFixture(t, trueFalseBank(2))

	assert.NoError(t, f.run(t, nil))
}

func TestRun_MissingBankIsFatal(t *testing.T) {
	f := newFixture(t, nil)

	err := f.run(t, nil, "q")

	assert.ErrorIs(t, err, question.ErrDataUnavailable)
}

func TestRun_AllCorrectThenCongratulations(t *testing.T) {
	f := newFixture(t, trueFalseBank(3))

	require.NoError(t, f.run(t, nil, "1", "2", "O", "O", "O", "q"))

	st := f.saved(t)
	assert.Equal(t, 3, st.Answered.Len())
	assert.Equal(t, 0, st.Failed.Len())
	assert.Contains(t, f.out.String(), "Correct: 3")
	assert.Contains(t, f.out.String(), "Congratulations")
}

func TestRun_InvalidChoiceReprompts(t *testing.T) {
	f := newFixture(t, trueFalseBank(1))

	require.NoError(t, f.run(t, nil, "7", "2", "q"))

	assert.Equal(t, 2, strings.Count(f.out.String(), "Invalid choice, please try again."))
}

func TestRun_BackReturnsToTypeSelection(t *testing.T) {
	f := newFixture(t, trueFalseBank(1))

	require.NoError(t, f.run(t, nil, "1", "b", "q"))

	assert.Equal(t, 2, strings.Count(f.out.String(), "=== Step 1: question type ==="))
	assert.Equal(t, 0, f.saved(t).Answered.Len())
}

func TestRun_BlockedQuestionNeverOffered(t *testing.T) {
	qs := trueFalseBank(2)
	qs[1].ID = question.BlockedID
	f := newFixture(t, qs)

	require.NoError(t, f.run(t, nil, "3", "2", "O", "q"))

	assert.Contains(t, f.out.String(), "Available questions: 1")
	assert.Equal(t, 1, strings.Count(f.out.String(), "Question 1/1"))
	assert.False(t, f.saved(t).Answered.Contains(question.BlockedID))
}

func TestRun_MarkHidesQuestionOnNextIteration(t *testing.T) {
	f := newFixture(t, trueFalseBank(2))

	require.NoError(t, f.run(t, nil, "3", "2", "-", "O", "q"))

	st := f.saved(t)
	assert.Equal(t, 1, st.Marked.Len())
	assert.Equal(t, 1, st.Answered.Len())
	assert.Contains(t, f.out.String(), "Available questions: 2")
	assert.Contains(t, f.out.String(), "Available questions: 1")
}

func TestRun_ResetKeepsMarks(t *testing.T) {
	f := newFixture(t, trueFalseBank(3))
	bank := trueFalseBank(3)
	st := progress.NewState()
	st.RecordCorrect(bank[0])
	st.RecordWrong(bank[1])
	st.Mark(bank[2])
	require.NoError(t, f.store.Save(st))

	require.NoError(t, f.run(t, nil, "r", "q"))

	saved := f.saved(t)
	assert.Equal(t, 0, saved.Answered.Len())
	assert.Equal(t, 0, saved.Failed.Len())
	assert.True(t, saved.Marked.Contains("003"))
	assert.Contains(t, f.out.String(), "History cleared")
}

func TestRun_ResetAllRestoresMarkedQuestions(t *testing.T) {
	f := newFixture(t, trueFalseBank(3))
	st := progress.NewState()
	st.Mark(trueFalseBank(3)[2])
	require.NoError(t, f.store.Save(st))

	require.NoError(t, f.run(t, nil, "R", "q"))

	assert.Equal(t, 0, f.saved(t).Marked.Len())
	out := f.out.String()
	first := strings.Index(out, "Available questions: 2")
	second := strings.Index(out, "Available questions: 3")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestRun_FailedOnlyScope(t *testing.T) {
	f := newFixture(t, trueFalseBank(3))
	st := progress.NewState()
	st.RecordWrong(trueFalseBank(3)[1])
	require.NoError(t, f.store.Save(st))

	require.NoError(t, f.run(t, nil, "3", "1", "O", "q"))

	saved := f.saved(t)
	assert.Equal(t, []string{"002"}, saved.Answered.IDs())
	assert.Equal(t, 0, saved.Failed.Len())
	assert.Contains(t, f.out.String(), "Question 1/1: statement 2")
}

func TestRun_RoundSize(t *testing.T) {
	f := newFixture(t, trueFalseBank(5))

	require.NoError(t, f.run(t, func(o *Options) { o.RoundSize = 2 }, "1", "2", "O", "O", "q"))

	assert.Equal(t, 2, f.saved(t).Answered.Len())
	assert.Contains(t, f.out.String(), "Total questions: 2")
}

func TestRun_AskCountRemembersChoice(t *testing.T) {
	f := newFixture(t, trueFalseBank(5))

	require.NoError(t, f.run(t, func(o *Options) { o.AskCount = true }, "1", "2", "2", "O", "O", "q"))

	saved := f.saved(t)
	assert.Equal(t, 2, saved.LastQuestionCount)
	assert.Equal(t, 2, saved.Answered.Len())
}

func TestSummary(t *testing.T) {
	st := progress.NewState()
	bank := trueFalseBank(4)
	st.RecordCorrect(bank[0])
	st.RecordWrong(bank[1])

	assert.Equal(t, "4 questions, 1 answered, 1 failed, 0 marked", Summary(bank, st))
}

func TestRun_FailedCountSkipsMarked(t *testing.T) {
	f := newFixture(t, trueFalseBank(3))
	bank := trueFalseBank(3)
	st := progress.NewState()
	st.RecordWrong(bank[0])
	st.RecordWrong(bank[1])
	st.Mark(bank[1])
	require.NoError(t, f.store.Save(st))

	require.NoError(t, f.run(t, nil, "3", "b", "q"))

	assert.Contains(t, f.out.String(), "Failed, to retry: 1")
	assert.Contains(t, f.out.String(), "Only previously failed questions (1)")
}
