package database

import (
	"context"
	"math"
	"time"

	"github.com/mstanic/ironlog/internal/models"
)

// AddBodyWeight appends a body-weight measurement. The weight must be
// positive and carry at most one decimal digit; finer values are rejected
// with a ValidationError before any write.
func (s *Store) AddBodyWeight(ctx context.Context, weight float64, timestamp int64) (int64, error) {
	if weight <= 0 {
		return 0, &ValidationError{Field: "weight", Reason: "must be positive"}
	}
	tenths := weight * 10
	if math.Abs(tenths-math.Round(tenths)) > 1e-9 {
		return 0, &ValidationError{Field: "weight", Reason: "at most one decimal place"}
	}
	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := s.DB.ExecContext(ctx,
		"INSERT INTO body_weights (weight, timestamp) VALUES (?, ?)", weight, timestamp)
	if err != nil {
		return 0, wrapErr(EntityBodyWeight, "insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapErr(EntityBodyWeight, "insert", 0, err)
	}
	return id, nil
}

// AllBodyWeights returns every body-weight entry, newest first.
func (s *Store) AllBodyWeights(ctx context.Context) ([]models.BodyWeightEntry, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, weight, timestamp FROM body_weights ORDER BY timestamp DESC")
	if err != nil {
		return nil, wrapErr(EntityBodyWeight, "list", 0, err)
	}
	defer rows.Close()

	var out []models.BodyWeightEntry
	for rows.Next() {
		var e models.BodyWeightEntry
		if err := rows.Scan(&e.ID, &e.Weight, &e.Timestamp); err != nil {
			return nil, wrapErr(EntityBodyWeight, "scan", 0, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityBodyWeight, "scan", 0, err)
	}
	return out, nil
}
