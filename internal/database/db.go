// Package database is the versioned local store: five independently keyed
// record collections (exercises, workout logs, body weights, user profile,
// coach feedback) plus a settings table, in a single sqlite file. Schema
// migrations run transactionally before the handle is handed out.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// schemaVersion is the current schema generation, tracked in
// PRAGMA user_version. Generation 1 stored workout-log measurements in a
// column named "weight"; generation 2 renamed it to "value".
const schemaVersion = 2

const defaultDBTimeout = 5 * time.Second

// Store is the process-wide store handle. Construct it once at startup with
// Open (or OpenDefault) and pass it by reference; it lives for the process.
type Store struct {
	DB     *sql.DB
	dbFile string
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// OpenDefault opens the store at path exactly once per process and memoizes
// the result, so concurrent callers all wait on the same open/migrate
// sequence and share one handle.
func OpenDefault(ctx context.Context, path string) (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Open(ctx, path)
	})
	return defaultStore, defaultErr
}

// Open opens or creates the database at path, creates the collections and
// their indexes, and migrates older schema generations. Any failure is
// returned as an *OpenError; the store must not be used after one.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	s := &Store{DB: db, dbFile: path}

	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

func (s *Store) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS exercises (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS workout_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			exercise_id TEXT NOT NULL,
			value REAL,
			completed INTEGER NOT NULL DEFAULT 0,
			timestamp INTEGER NOT NULL,
			session_id TEXT NOT NULL,
			type TEXT,
			time REAL,
			pace REAL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_workout_logs_exercise ON workout_logs(exercise_id);`,
		`CREATE INDEX IF NOT EXISTS idx_workout_logs_session ON workout_logs(session_id);`,
		`CREATE INDEX IF NOT EXISTS idx_workout_logs_timestamp ON workout_logs(timestamp);`,
		`CREATE TABLE IF NOT EXISTS body_weights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			weight REAL NOT NULL,
			timestamp INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_body_weights_timestamp ON body_weights(timestamp);`,
		`CREATE TABLE IF NOT EXISTS user_profile (
			id TEXT PRIMARY KEY,
			goal TEXT NOT NULL DEFAULT '',
			facts TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS coach_feedback (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			feedback TEXT NOT NULL,
			timestamp INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_coach_feedback_timestamp ON coach_feedback(timestamp);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := s.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// migrate brings the stored schema generation up to schemaVersion. It runs
// before the handle is returned, so no application read or write can observe
// a half-migrated collection.
func (s *Store) migrate(ctx context.Context) error {
	var version int
	if err := s.DB.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	if version < 2 {
		if err := s.migrateWeightToValue(ctx); err != nil {
			return fmt.Errorf("migrate v1 to v2: %w", err)
		}
	}

	// PRAGMA does not accept bound parameters.
	if _, err := s.DB.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	logrus.Debugf("store schema migrated from generation %d to %d", version, schemaVersion)
	return nil
}

// migrateWeightToValue copies the legacy workout-log "weight" column into
// "value" for every record still missing one, then clears the legacy column.
// Running it twice is a no-op: the second pass matches zero rows.
func (s *Store) migrateWeightToValue(ctx context.Context) error {
	hasWeight, err := s.hasColumn(ctx, "workout_logs", "weight")
	if err != nil {
		return err
	}
	if !hasWeight {
		// Fresh database, nothing to rewrite.
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	commit := false
	defer func() {
		if !commit {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "ALTER TABLE workout_logs ADD COLUMN value REAL"); err != nil {
		if !isIgnorableMigrationErr(err) {
			return err
		}
	}
	res, err := tx.ExecContext(ctx,
		"UPDATE workout_logs SET value = weight WHERE value IS NULL AND weight IS NOT NULL")
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE workout_logs SET weight = NULL"); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	commit = true

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		logrus.Infof("migrated %d workout logs from weight to value", n)
	}
	return nil
}

func (s *Store) hasColumn(ctx context.Context, table, column string) (bool, error) {
	rows, err := s.DB.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue interface{}
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func isIgnorableMigrationErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}
