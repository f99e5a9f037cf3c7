package database

import (
	"context"
	"errors"
	"testing"

	"github.com/mstanic/ironlog/internal/models"
)

func TestUpsertExercise_ValidatesAndUpdates(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	if err := s.UpsertExercise(ctx, models.Exercise{Name: "Squat"}); !IsValidation(err) {
		t.Fatalf("expected validation error for missing id, got %v", err)
	}
	if err := s.UpsertExercise(ctx, models.Exercise{ID: "squat"}); !IsValidation(err) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}

	if err := s.UpsertExercise(ctx, models.Exercise{ID: "squat", Name: "Squat"}); err != nil {
		t.Fatalf("UpsertExercise failed: %v", err)
	}
	if err := s.UpsertExercise(ctx, models.Exercise{ID: "squat", Name: "Back Squat"}); err != nil {
		t.Fatalf("UpsertExercise update failed: %v", err)
	}

	ex, err := s.GetExercise(ctx, "squat")
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if ex.Name != "Back Squat" {
		t.Fatalf("expected upsert to update name, got %q", ex.Name)
	}

	all, err := s.AllExercises(ctx)
	if err != nil {
		t.Fatalf("AllExercises failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected a single exercise after upsert, got %d", len(all))
	}
}

func TestGetExercise_NotFound(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	_, err := s.GetExercise(ctx, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddBodyWeight_Validation(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	if _, err := s.AddBodyWeight(ctx, 0, 0); !IsValidation(err) {
		t.Fatalf("expected validation error for zero weight, got %v", err)
	}
	if _, err := s.AddBodyWeight(ctx, -80, 0); !IsValidation(err) {
		t.Fatalf("expected validation error for negative weight, got %v", err)
	}
	if _, err := s.AddBodyWeight(ctx, 75.55, 0); !IsValidation(err) {
		t.Fatalf("expected validation error for two decimals, got %v", err)
	}
	if _, err := s.AddBodyWeight(ctx, 75.5, 1000); err != nil {
		t.Fatalf("AddBodyWeight failed for one decimal: %v", err)
	}
	if _, err := s.AddBodyWeight(ctx, 76, 2000); err != nil {
		t.Fatalf("AddBodyWeight failed for whole number: %v", err)
	}

	weights, err := s.AllBodyWeights(ctx)
	if err != nil {
		t.Fatalf("AllBodyWeights failed: %v", err)
	}
	if len(weights) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(weights))
	}
	if weights[0].Weight != 76 || weights[1].Weight != 75.5 {
		t.Fatalf("expected newest first, got %v then %v", weights[0].Weight, weights[1].Weight)
	}
}

func TestProfile_SingletonUpsert(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	if err := s.SaveProfile(ctx, models.UserProfile{Goal: "strength"}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := s.SaveProfile(ctx, models.UserProfile{Goal: "hypertrophy", Facts: "left knee"}); err != nil {
		t.Fatalf("SaveProfile overwrite failed: %v", err)
	}

	p, err := s.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if p == nil {
		t.Fatalf("expected profile, got nil")
	}
	if p.Goal != "hypertrophy" || p.Facts != "left knee" {
		t.Fatalf("expected overwritten profile, got %+v", p)
	}
}

func TestCoachFeedback_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	if _, err := s.AddCoachFeedback(ctx, "   ", 0); !IsValidation(err) {
		t.Fatalf("expected validation error for blank feedback, got %v", err)
	}

	first, err := s.AddCoachFeedback(ctx, "  slow the eccentric  ", 1000)
	if err != nil {
		t.Fatalf("AddCoachFeedback failed: %v", err)
	}
	if _, err := s.AddCoachFeedback(ctx, "add a warmup set", 2000); err != nil {
		t.Fatalf("AddCoachFeedback failed: %v", err)
	}

	notes, err := s.AllCoachFeedback(ctx)
	if err != nil {
		t.Fatalf("AllCoachFeedback failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[1].Feedback != "slow the eccentric" {
		t.Fatalf("expected trimmed feedback, got %q", notes[1].Feedback)
	}

	if err := s.DeleteCoachFeedback(ctx, first); err != nil {
		t.Fatalf("DeleteCoachFeedback failed: %v", err)
	}
	notes, err = s.AllCoachFeedback(ctx)
	if err != nil {
		t.Fatalf("AllCoachFeedback failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note after delete, got %d", len(notes))
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	if _, ok := s.GetSetting(ctx, "missing"); ok {
		t.Fatalf("expected missing setting to report absent")
	}
	if err := s.SetSetting(ctx, "k", "v1"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := s.SetSetting(ctx, "k", "v2"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	value, ok := s.GetSetting(ctx, "k")
	if !ok || value != "v2" {
		t.Fatalf("expected v2, got %q (ok=%v)", value, ok)
	}
}
