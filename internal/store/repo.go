package store

import (
	"context"
	"time"
)

// RoundEventData captures the start or end of a quiz round.
type RoundEventData struct {
	RoundID string
	Action  string // start, finish or quit
	Total   int
	Correct int
	Wrong   int
	Marked  int
}

// AnswerEventData captures one graded (or marked) question.
type AnswerEventData struct {
	RoundID       string
	QuestionID    string
	QuestionKind  string
	CorrectAnswer string
	Response      string
	Outcome       string
	Correct       bool
}

// EventRepo provides append access to journal events.
type EventRepo interface {
	// AppendRoundEvent records a round lifecycle event.
	AppendRoundEvent(ctx context.Context, data RoundEventData) error

	// AppendAnswerEvent records a single answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
}

// Totals aggregates the whole journal.
type Totals struct {
	Rounds         int // rounds started
	FinishedRounds int
	Answers        int // scored answers
	Correct        int
	LastActivity   time.Time
}

// Accuracy is Correct / Answers (0 when empty).
func (t Totals) Accuracy() float64 {
	if t.Answers == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Answers)
}

// MissedQuestion is a question ranked by how often it was answered wrong.
type MissedQuestion struct {
	QuestionID string
	Attempts   int
	Misses     int
}

// HistoryRepo reads aggregates from the journal.
type HistoryRepo interface {
	// Totals returns counts over every recorded event.
	Totals(ctx context.Context) (Totals, error)

	// MostMissed returns up to limit questions with at least one miss,
	// most misses first.
	MostMissed(ctx context.Context, limit int) ([]MissedQuestion, error)
}
