// Package backup serializes the local store to portable JSON documents and
// restores it from them, with conflict-tolerant partial-import semantics.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mstanic/ironlog/internal/models"
)

// Version is the backup document format version.
const Version = "1.0.0"

const lastBackupKey = "backup.last_completed_at"

var (
	// ErrMalformedBackup is returned before any write when a backup document
	// lacks the required exercises/workoutLogs arrays.
	ErrMalformedBackup = errors.New("backup document missing required arrays")
	// ErrEmptyFile is returned when a backup file has no content at all.
	ErrEmptyFile = errors.New("backup file is empty")
)

// Document is a full, lossless snapshot of the exercise and workout-log
// collections.
type Document struct {
	Version     string                   `json:"version"`
	ExportDate  int64                    `json:"exportDate"` // epoch millis
	Exercises   []models.Exercise        `json:"exercises"`
	WorkoutLogs []models.WorkoutLogEntry `json:"workoutLogs"`
}

// Export snapshots the store into a backup document.
func Export(ctx context.Context, store Store) (*Document, error) {
	exercises, err := store.AllExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}
	logs, err := store.AllLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("export workout logs: %w", err)
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	if logs == nil {
		logs = []models.WorkoutLogEntry{}
	}
	return &Document{
		Version:     Version,
		ExportDate:  time.Now().UnixMilli(),
		Exercises:   exercises,
		WorkoutLogs: logs,
	}, nil
}

// ImportResult reports how many records of each collection made it in.
// Success is false only for a structurally invalid document; individual
// record failures are skipped and show up as a lower count.
type ImportResult struct {
	ExercisesImported int  `json:"exercisesImported"`
	LogsImported      int  `json:"logsImported"`
	Success           bool `json:"success"`
}

// Import restores a backup document into the store. The document must carry
// both required arrays or nothing is written at all. Each record is then
// attempted independently: a bad exercise or log is logged and skipped, never
// aborting the rest. Log timestamps are preserved verbatim so history
// restores exactly.
func Import(ctx context.Context, store Store, data []byte) (*ImportResult, error) {
	if len(data) == 0 {
		return &ImportResult{}, ErrEmptyFile
	}

	var raw struct {
		Exercises   *[]json.RawMessage `json:"exercises"`
		WorkoutLogs *[]json.RawMessage `json:"workoutLogs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ImportResult{}, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	if raw.Exercises == nil || raw.WorkoutLogs == nil {
		return &ImportResult{}, ErrMalformedBackup
	}

	result := &ImportResult{Success: true}

	for i, rec := range *raw.Exercises {
		var ex models.Exercise
		if err := json.Unmarshal(rec, &ex); err != nil {
			logrus.Warnf("backup import: skipping exercise %d: %v", i, err)
			continue
		}
		if err := store.UpsertExercise(ctx, ex); err != nil {
			logrus.Warnf("backup import: skipping exercise %q: %v", ex.ID, err)
			continue
		}
		result.ExercisesImported++
	}

	for i, rec := range *raw.WorkoutLogs {
		var entry models.WorkoutLogEntry
		if err := json.Unmarshal(rec, &entry); err != nil {
			logrus.Warnf("backup import: skipping workout log %d: %v", i, err)
			continue
		}
		entry.ID = 0 // ids are store-local; let the insert assign fresh ones
		if _, err := store.AddWorkoutLog(ctx, entry); err != nil {
			logrus.Warnf("backup import: skipping workout log %d: %v", i, err)
			continue
		}
		result.LogsImported++
	}

	return result, nil
}

// FileName is the canonical backup file name for a given date,
// gym-workout-backup-YYYY-MM-DD.json with zero padding.
func FileName(t time.Time) string {
	return fmt.Sprintf("gym-workout-backup-%04d-%02d-%02d.json", t.Year(), t.Month(), t.Day())
}

// WriteFile exports the store to path as JSON, optionally encrypted, and
// records the completion for the reminder policy.
func WriteFile(ctx context.Context, store Store, path string, passphrase string) error {
	doc, err := Export(ctx, store)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}
	if passphrase != "" {
		payload, err = Encrypt(payload, passphrase)
		if err != nil {
			return fmt.Errorf("encrypt backup: %w", err)
		}
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write backup %s: %w", path, err)
	}
	return MarkCompleted(ctx, store, time.Now())
}

// ImportFile restores the store from a backup file, with two-stage
// validation: the file must be non-empty and valid JSON before the document
// shape is checked. Encrypted backups are detected and decrypted first.
func ImportFile(ctx context.Context, store Store, path string, passphrase string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if IsEncrypted(data) {
		data, err = Decrypt(data, passphrase)
		if err != nil {
			return nil, fmt.Errorf("decrypt backup %s: %w", path, err)
		}
	}
	return Import(ctx, store, data)
}

// Due reports whether a backup reminder should fire: no backup has ever
// completed, or the last one is more than reminderAfter old.
func Due(ctx context.Context, store Store, now time.Time, reminderAfter time.Duration) bool {
	value, ok := store.GetSetting(ctx, lastBackupKey)
	if !ok {
		return true
	}
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return true
	}
	return now.Sub(time.UnixMilli(ms)) > reminderAfter
}

// MarkCompleted records a successful backup for the reminder policy.
func MarkCompleted(ctx context.Context, store Store, now time.Time) error {
	return store.SetSetting(ctx, lastBackupKey, strconv.FormatInt(now.UnixMilli(), 10))
}
