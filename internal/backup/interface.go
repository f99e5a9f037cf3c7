package backup

import (
	"context"

	"github.com/mstanic/ironlog/internal/database"
	"github.com/mstanic/ironlog/internal/models"
)

// Store is the slice of the local store the backup subsystem needs.
//
//go:generate mockgen -source=interface.go -destination=mock_store_test.go -package=backup
type Store interface {
	AllExercises(ctx context.Context) ([]models.Exercise, error)
	AllLogs(ctx context.Context) ([]models.WorkoutLogEntry, error)
	AllBodyWeights(ctx context.Context) ([]models.BodyWeightEntry, error)
	AllCoachFeedback(ctx context.Context) ([]models.CoachFeedbackEntry, error)
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpsertExercise(ctx context.Context, ex models.Exercise) error
	AddWorkoutLog(ctx context.Context, entry models.WorkoutLogEntry) (int64, error)
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

var _ Store = (*database.Store)(nil)
