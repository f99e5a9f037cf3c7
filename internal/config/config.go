// Package config holds application configuration, loaded from an optional
// TOML file with sane defaults for everything.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mstanic/ironlog/internal/util"
)

// Application constants.
const (
	AppName    = "ironlog"
	DBFileName = "ironlog.db"

	// BackupReminderDays is how long a backup may be overdue before the CLI
	// starts nagging.
	BackupReminderDays = 7
)

type Config struct {
	// DataDir holds the sqlite database. Empty means the XDG data dir.
	DataDir string `toml:"data_dir"`
	// BackupDir is where backup and analytics exports are written.
	// Empty means the user's documents directory.
	BackupDir string `toml:"backup_dir"`
	// CatalogFile optionally points to a JSON session-template catalog that
	// replaces the built-in one.
	CatalogFile string `toml:"catalog_file"`

	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		DataDir:     util.DataDir(AppName),
		BackupDir:   util.DocumentsDir(),
		LogLevel:    "warn",
		LogToStdout: true,
	}
}

// Load reads the TOML config at path, falling back to defaults for unset
// fields. A missing file is not an error; an unreadable or invalid one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = filepath.Join(util.ConfigDir(AppName), "config.toml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = util.DataDir(AppName)
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = util.DocumentsDir()
	}
	return cfg, nil
}

// DBPath is the full path of the sqlite database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}
