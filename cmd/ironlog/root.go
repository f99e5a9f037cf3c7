package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mstanic/ironlog/internal/backup"
	"github.com/mstanic/ironlog/internal/config"
	"github.com/mstanic/ironlog/internal/database"
	"github.com/mstanic/ironlog/internal/logging"
	"github.com/mstanic/ironlog/internal/session"
)

var (
	configPath string

	cfg     *config.Config
	store   *database.Store
	catalog *session.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "ironlog",
	Short: "ironlog tracks your workouts from the terminal",
	Long: "ironlog is a local-first workout log: record gym and cardio sessions,\n" +
		"track body weight and coach feedback, and get streaks, progressions\n" +
		"and weekly statistics. Everything stays in one sqlite file.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml")
}

// setup wires config, logging, the single-flight store handle and the
// session catalog before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	logging.Setup(logging.SetupParams{
		LogFileName: cfg.LogsPath,
		LogToStdout: cfg.LogToStdout,
		LogLevel:    cfg.LogLevel,
	})

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err = database.OpenDefault(ctx, cfg.DBPath())
	if err != nil {
		return err
	}

	if cfg.CatalogFile != "" {
		catalog, err = session.LoadCatalog(cfg.CatalogFile)
		if err != nil {
			return err
		}
	} else {
		catalog = session.DefaultCatalog()
	}

	// Loading a catalog upserts its exercises so logs always have a record
	// to reference.
	for _, ex := range catalog.Exercises() {
		if err := store.UpsertExercise(ctx, ex); err != nil {
			logrus.Warnf("upsert exercise %s: %v", ex.ID, err)
		}
	}

	remindBackup(ctx)
	return nil
}

func remindBackup(ctx context.Context) {
	after := time.Duration(config.BackupReminderDays) * 24 * time.Hour
	if backup.Due(ctx, store, time.Now(), after) {
		fmt.Fprintln(os.Stderr, "Reminder: no backup in the last week. Run `ironlog backup export`.")
	}
}

func defaultBackupPath(now time.Time) string {
	return filepath.Join(cfg.BackupDir, backup.FileName(now))
}
