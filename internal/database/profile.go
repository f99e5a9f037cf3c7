package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mstanic/ironlog/internal/models"
)

// SaveProfile overwrites the singleton user profile in place.
func (s *Store) SaveProfile(ctx context.Context, p models.UserProfile) error {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO user_profile (id, goal, facts) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET goal = excluded.goal, facts = excluded.facts`,
		models.ProfileKey, p.Goal, p.Facts)
	return wrapErr(EntityProfile, "save", 0, err)
}

// GetProfile returns the user profile, or nil when none has been saved yet.
func (s *Store) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var p models.UserProfile
	err := s.DB.QueryRowContext(ctx,
		"SELECT goal, facts FROM user_profile WHERE id = ?", models.ProfileKey).
		Scan(&p.Goal, &p.Facts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(EntityProfile, "get", 0, err)
	}
	return &p, nil
}
