package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// historyRepo implements HistoryRepo with plain SQL.
type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := r.db.QueryRowContext(ctx, `SELECT
		COALESCE(SUM(CASE WHEN action = 'start' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN action = 'finish' THEN 1 ELSE 0 END), 0)
		FROM round_events`).Scan(&t.Rounds, &t.FinishedRounds)
	if err != nil {
		return Totals{}, fmt.Errorf("count rounds: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COALESCE(SUM(CASE WHEN correct THEN 1 ELSE 0 END), 0)
		FROM answer_events WHERE outcome != 'marked'`).Scan(&t.Answers, &t.Correct)
	if err != nil {
		return Totals{}, fmt.Errorf("count answers: %w", err)
	}

	var last sql.NullInt64
	err = r.db.QueryRowContext(ctx,
		`SELECT timestamp FROM round_events ORDER BY sequence DESC LIMIT 1`).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Totals{}, fmt.Errorf("last activity: %w", err)
	}
	if last.Valid {
		t.LastActivity = time.UnixMilli(last.Int64)
	}
	return t, nil
}

func (r *historyRepo) MostMissed(ctx context.Context, limit int) ([]MissedQuestion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT
		question_id,
		COUNT(*) AS attempts,
		SUM(CASE WHEN correct THEN 0 ELSE 1 END) AS misses
		FROM answer_events
		WHERE outcome != 'marked'
		GROUP BY question_id
		HAVING misses > 0
		ORDER BY misses DESC, question_id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query most missed: %w", err)
	}
	defer rows.Close()

	var out []MissedQuestion
	for rows.Next() {
		var m MissedQuestion
		if err := rows.Scan(&m.QuestionID, &m.Attempts, &m.Misses); err != nil {
			return nil, fmt.Errorf("scan most missed: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
