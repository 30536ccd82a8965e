package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestReopenKeepsSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendRoundEvent(ctx, RoundEventData{RoundID: "r1", Action: "start", Total: 2}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.EventRepo().AppendRoundEvent(ctx, RoundEventData{RoundID: "r1", Action: "finish", Total: 2}))

	var maxSeq int64
	require.NoError(t, s.DB().QueryRow(`SELECT MAX(sequence) FROM round_events`).Scan(&maxSeq))
	assert.Equal(t, int64(2), maxSeq)
}

func TestHistory_EmptyJournal(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	totals, err := s.HistoryRepo().Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)
	assert.Equal(t, 0.0, totals.Accuracy())

	missed, err := s.HistoryRepo().MostMissed(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, missed)
}

func TestHistory_TotalsAndMostMissed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	require.NoError(t, events.AppendRoundEvent(ctx, RoundEventData{RoundID: "r1", Action: "start", Total: 4}))
	answers := []AnswerEventData{
		{RoundID: "r1", QuestionID: "001", Outcome: "wrong"},
		{RoundID: "r1", QuestionID: "002", Outcome: "correct", Correct: true},
		{RoundID: "r1", QuestionID: "003", Outcome: "unknown"},
		{RoundID: "r1", QuestionID: "004", Outcome: "marked"},
	}
	for _, a := range answers {
		a.QuestionKind = "true-false"
		a.CorrectAnswer = "O"
		require.NoError(t, events.AppendAnswerEvent(ctx, a))
	}
	require.NoError(t, events.AppendRoundEvent(ctx, RoundEventData{RoundID: "r1", Action: "finish", Total: 4, Correct: 1, Wrong: 2, Marked: 1}))

	require.NoError(t, events.AppendRoundEvent(ctx, RoundEventData{RoundID: "r2", Action: "start", Total: 1}))
	require.NoError(t, events.AppendAnswerEvent(ctx, AnswerEventData{RoundID: "r2", QuestionID: "001", QuestionKind: "true-false", CorrectAnswer: "O", Outcome: "wrong"}))
	require.NoError(t, events.AppendRoundEvent(ctx, RoundEventData{RoundID: "r2", Action: "quit", Total: 1, Wrong: 1}))

	totals, err := s.HistoryRepo().Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Rounds)
	assert.Equal(t, 1, totals.FinishedRounds)
	assert.Equal(t, 4, totals.Answers)
	assert.Equal(t, 1, totals.Correct)
	assert.InDelta(t, 0.25, totals.Accuracy(), 1e-9)
	assert.False(t, totals.LastActivity.IsZero())

	missed, err := s.HistoryRepo().MostMissed(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []MissedQuestion{
		{QuestionID: "001", Attempts: 2, Misses: 2},
		{QuestionID: "003", Attempts: 1, Misses: 1},
	}, missed)
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "journal.db")
	require.NoError(t, EnsureDir(path))
	assert.DirExists(t, filepath.Dir(path))
}
