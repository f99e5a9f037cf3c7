package database

import (
	"context"
	"testing"

	"github.com/mstanic/ironlog/internal/models"
)

func addLog(t *testing.T, ctx context.Context, s *Store, entry models.WorkoutLogEntry) int64 {
	t.Helper()
	id, err := s.AddWorkoutLog(ctx, entry)
	if err != nil {
		t.Fatalf("AddWorkoutLog failed: %v", err)
	}
	return id
}

func TestAddWorkoutLog_RequiresExerciseID(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	_, err := s.AddWorkoutLog(ctx, models.WorkoutLogEntry{Value: 80})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddWorkoutLog_AssignsTimestampWhenUnset(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	addLog(t, ctx, s, models.WorkoutLogEntry{ExerciseID: "squat", Value: 80, SessionID: "A"})
	entry, err := s.LastEntryFor(ctx, "squat")
	if err != nil {
		t.Fatalf("LastEntryFor failed: %v", err)
	}
	if entry == nil {
		t.Fatalf("expected entry, got nil")
	}
	if entry.Timestamp == 0 {
		t.Fatalf("expected an assigned timestamp, got zero")
	}
}

func TestAddWorkoutLog_PreservesExplicitTimestamp(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	addLog(t, ctx, s, models.WorkoutLogEntry{
		ExerciseID: "squat", Value: 80, SessionID: "A", Timestamp: 123456789,
	})
	entry, err := s.LastEntryFor(ctx, "squat")
	if err != nil {
		t.Fatalf("LastEntryFor failed: %v", err)
	}
	if entry.Timestamp != 123456789 {
		t.Fatalf("expected timestamp 123456789, got %d", entry.Timestamp)
	}
}

func TestLastEntryFor_NoHistory(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	entry, err := s.LastEntryFor(ctx, "deadlift")
	if err != nil {
		t.Fatalf("LastEntryFor failed: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil for unknown exercise, got %+v", entry)
	}
}

func TestLastNEntriesFor_OrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	for i, v := range []float64{60, 62.5, 65, 67.5} {
		addLog(t, ctx, s, models.WorkoutLogEntry{
			ExerciseID: "bench", Value: v, SessionID: "A",
			Timestamp: int64(1000 * (i + 1)), Completed: true,
		})
	}
	addLog(t, ctx, s, models.WorkoutLogEntry{
		ExerciseID: "squat", Value: 100, SessionID: "A", Timestamp: 9000,
	})

	entries, err := s.LastNEntriesFor(ctx, "bench", 3)
	if err != nil {
		t.Fatalf("LastNEntriesFor failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Value != 67.5 || entries[1].Value != 65 || entries[2].Value != 62.5 {
		t.Fatalf("expected most recent first, got %v, %v, %v",
			entries[0].Value, entries[1].Value, entries[2].Value)
	}

	entries, err = s.LastNEntriesFor(ctx, "bench", 10)
	if err != nil {
		t.Fatalf("LastNEntriesFor failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected short history to return 4 entries, got %d", len(entries))
	}
}

func TestHistoryFor_FiltersBySession(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	addLog(t, ctx, s, models.WorkoutLogEntry{ExerciseID: "squat", SessionID: "A", Timestamp: 1000})
	addLog(t, ctx, s, models.WorkoutLogEntry{ExerciseID: "bench", SessionID: "A", Timestamp: 3000})
	addLog(t, ctx, s, models.WorkoutLogEntry{ExerciseID: "row", SessionID: "B", Timestamp: 2000})

	entries, err := s.HistoryFor(ctx, "A")
	if err != nil {
		t.Fatalf("HistoryFor failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for session A, got %d", len(entries))
	}
	if entries[0].ExerciseID != "bench" || entries[1].ExerciseID != "squat" {
		t.Fatalf("expected newest first, got %s then %s",
			entries[0].ExerciseID, entries[1].ExerciseID)
	}
}

func TestInRange_Inclusive(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	for _, ts := range []int64{1000, 2000, 3000, 4000} {
		addLog(t, ctx, s, models.WorkoutLogEntry{ExerciseID: "squat", SessionID: "A", Timestamp: ts})
	}

	entries, err := s.InRange(ctx, 2000, 3000)
	if err != nil {
		t.Fatalf("InRange failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries in [2000,3000], got %d", len(entries))
	}
	if entries[0].Timestamp != 3000 || entries[1].Timestamp != 2000 {
		t.Fatalf("expected boundaries included newest first, got %d, %d",
			entries[0].Timestamp, entries[1].Timestamp)
	}
}

func TestAllLogs_InsertionOrderAndCardioFields(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t, ctx)

	addLog(t, ctx, s, models.WorkoutLogEntry{
		ExerciseID: "running", Value: 5.2, SessionID: "running",
		Type: models.LogTypeCardio, Time: 28, Pace: 5.4,
		Completed: true, Timestamp: 5000,
	})
	addLog(t, ctx, s, models.WorkoutLogEntry{
		ExerciseID: "squat", Value: 100, SessionID: "A", Timestamp: 1000,
	})

	logs, err := s.AllLogs(ctx)
	if err != nil {
		t.Fatalf("AllLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	// Insertion order, not timestamp order.
	if logs[0].ExerciseID != "running" {
		t.Fatalf("expected insertion order, got %s first", logs[0].ExerciseID)
	}
	if !logs[0].IsCardio() {
		t.Errorf("expected cardio entry")
	}
	if logs[0].Time != 28 || logs[0].Pace != 5.4 {
		t.Errorf("expected cardio fields round-tripped, got time %v pace %v",
			logs[0].Time, logs[0].Pace)
	}
	if logs[1].IsCardio() {
		t.Errorf("expected gym entry to not be cardio")
	}
}
