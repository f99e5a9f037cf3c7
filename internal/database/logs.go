package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mstanic/ironlog/internal/models"
)

const logColumns = "id, exercise_id, value, completed, timestamp, session_id, type, time, pace"

// AddWorkoutLog appends a log entry and returns its assigned id. The entry's
// timestamp is assigned at insert unless already set (backup restore keeps
// the original timestamps that way).
func (s *Store) AddWorkoutLog(ctx context.Context, entry models.WorkoutLogEntry) (int64, error) {
	if entry.ExerciseID == "" {
		return 0, &ValidationError{Field: "exerciseId", Reason: "required"}
	}
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().UnixMilli()
	}

	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO workout_logs (exercise_id, value, completed, timestamp, session_id, type, time, pace)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ExerciseID, entry.Value, boolToInt(entry.Completed), entry.Timestamp,
		entry.SessionID, nullableString(entry.Type), nullableFloat(entry.Time), nullableFloat(entry.Pace))
	if err != nil {
		return 0, wrapErr(EntityWorkoutLog, "insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapErr(EntityWorkoutLog, "insert", 0, err)
	}
	return id, nil
}

// LastEntryFor returns the most-recently-inserted log for an exercise, or
// nil when the exercise has no history.
func (s *Store) LastEntryFor(ctx context.Context, exerciseID string) (*models.WorkoutLogEntry, error) {
	entries, err := s.LastNEntriesFor(ctx, exerciseID, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// LastNEntriesFor returns the n most-recently-inserted logs for an exercise,
// most recent first. Shorter histories return fewer entries.
func (s *Store) LastNEntriesFor(ctx context.Context, exerciseID string, n int) ([]models.WorkoutLogEntry, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+logColumns+`
		FROM workout_logs
		WHERE exercise_id = ?
		ORDER BY id DESC
		LIMIT ?`, exerciseID, n)
	if err != nil {
		return nil, wrapErr(EntityWorkoutLog, "query last", 0, err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

// HistoryFor returns all logs for a session id, newest first.
func (s *Store) HistoryFor(ctx context.Context, sessionID string) ([]models.WorkoutLogEntry, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+logColumns+`
		FROM workout_logs
		WHERE session_id = ?
		ORDER BY timestamp DESC`, sessionID)
	if err != nil {
		return nil, wrapErr(EntityWorkoutLog, "query history", 0, err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

// InRange returns all logs with start <= timestamp <= end, newest first.
func (s *Store) InRange(ctx context.Context, start, end int64) ([]models.WorkoutLogEntry, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+logColumns+`
		FROM workout_logs
		WHERE timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp DESC`, start, end)
	if err != nil {
		return nil, wrapErr(EntityWorkoutLog, "query range", 0, err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

// AllLogs returns the full log stream in insertion order.
func (s *Store) AllLogs(ctx context.Context) ([]models.WorkoutLogEntry, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+logColumns+`
		FROM workout_logs
		ORDER BY id ASC`)
	if err != nil {
		return nil, wrapErr(EntityWorkoutLog, "query all", 0, err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

func scanLogs(rows *sql.Rows) ([]models.WorkoutLogEntry, error) {
	var entries []models.WorkoutLogEntry
	for rows.Next() {
		var (
			e         models.WorkoutLogEntry
			value     sql.NullFloat64
			completed int
			logType   sql.NullString
			logTime   sql.NullFloat64
			pace      sql.NullFloat64
		)
		if err := rows.Scan(&e.ID, &e.ExerciseID, &value, &completed, &e.Timestamp,
			&e.SessionID, &logType, &logTime, &pace); err != nil {
			return nil, wrapErr(EntityWorkoutLog, "scan", 0, err)
		}
		e.Value = value.Float64
		e.Completed = completed != 0
		e.Type = logType.String
		e.Time = logTime.Float64
		e.Pace = pace.Float64
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, wrapErr(EntityWorkoutLog, "scan", 0, err)
	}
	return entries, nil
}
