package database

import (
	"context"
	"strings"
	"time"

	"github.com/mstanic/ironlog/internal/models"
)

// AddCoachFeedback appends a coach note. Feedback that is empty after
// trimming is rejected before any write.
func (s *Store) AddCoachFeedback(ctx context.Context, feedback string, timestamp int64) (int64, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return 0, &ValidationError{Field: "feedback", Reason: "must not be empty"}
	}
	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := s.DB.ExecContext(ctx,
		"INSERT INTO coach_feedback (feedback, timestamp) VALUES (?, ?)", feedback, timestamp)
	if err != nil {
		return 0, wrapErr(EntityFeedback, "insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapErr(EntityFeedback, "insert", 0, err)
	}
	return id, nil
}

// DeleteCoachFeedback removes a note by id.
func (s *Store) DeleteCoachFeedback(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	_, err := s.DB.ExecContext(ctx, "DELETE FROM coach_feedback WHERE id = ?", id)
	return wrapErr(EntityFeedback, "delete", id, err)
}

// AllCoachFeedback returns every note, newest first.
func (s *Store) AllCoachFeedback(ctx context.Context) ([]models.CoachFeedbackEntry, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, feedback, timestamp FROM coach_feedback ORDER BY timestamp DESC")
	if err != nil {
		return nil, wrapErr(EntityFeedback, "list", 0, err)
	}
	defer rows.Close()

	var out []models.CoachFeedbackEntry
	for rows.Next() {
		var e models.CoachFeedbackEntry
		if err := rows.Scan(&e.ID, &e.Feedback, &e.Timestamp); err != nil {
			return nil, wrapErr(EntityFeedback, "scan", 0, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityFeedback, "scan", 0, err)
	}
	return out, nil
}
