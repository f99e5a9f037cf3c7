package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mstanic/ironlog/internal/models"
)

// UpsertExercise inserts or updates an exercise by id. Exercises are created
// whenever a session template is loaded and never deleted.
func (s *Store) UpsertExercise(ctx context.Context, ex models.Exercise) error {
	if ex.ID == "" {
		return &ValidationError{Field: "id", Reason: "required"}
	}
	if ex.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}

	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO exercises (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		ex.ID, ex.Name)
	return wrapErr(EntityExercise, "upsert", 0, err)
}

// GetExercise returns the exercise with the given id, or ErrNotFound.
func (s *Store) GetExercise(ctx context.Context, id string) (*models.Exercise, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var ex models.Exercise
	err := s.DB.QueryRowContext(ctx, "SELECT id, name FROM exercises WHERE id = ?", id).
		Scan(&ex.ID, &ex.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrapErr(EntityExercise, "get", 0, err)
	}
	return &ex, nil
}

// AllExercises returns every known exercise, ordered by id.
func (s *Store) AllExercises(ctx context.Context) ([]models.Exercise, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, "SELECT id, name FROM exercises ORDER BY id ASC")
	if err != nil {
		return nil, wrapErr(EntityExercise, "list", 0, err)
	}
	defer rows.Close()

	var out []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name); err != nil {
			return nil, wrapErr(EntityExercise, "scan", 0, err)
		}
		out = append(out, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityExercise, "scan", 0, err)
	}
	return out, nil
}
