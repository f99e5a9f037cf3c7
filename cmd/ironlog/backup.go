package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mstanic/ironlog/internal/backup"
)

var (
	backupOut     string
	backupEncrypt bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import backup files",
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a backup file of exercises and workout logs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := backupOut
		if path == "" {
			if err := os.MkdirAll(cfg.BackupDir, 0o755); err != nil {
				return fmt.Errorf("create backup dir: %w", err)
			}
			path = defaultBackupPath(time.Now())
		}

		passphrase := ""
		if backupEncrypt {
			var err error
			passphrase, err = readPassphrase("Passphrase: ", true)
			if err != nil {
				return err
			}
		}

		if err := backup.WriteFile(cmd.Context(), store, path, passphrase); err != nil {
			return err
		}
		fmt.Printf("Backup written to %s\n", path)
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore exercises and workout logs from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read backup %s: %w", path, err)
		}

		passphrase := ""
		if backup.IsEncrypted(data) {
			passphrase, err = readPassphrase("Passphrase: ", false)
			if err != nil {
				return err
			}
		}

		result, err := backup.ImportFile(cmd.Context(), store, path, passphrase)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d exercises and %d workout logs from %s\n",
			result.ExercisesImported, result.LogsImported, filepath.Base(path))
		return nil
	},
}

// readPassphrase prompts on the terminal without echo. With confirm set it
// asks twice and requires both entries to match.
func readPassphrase(prompt string, confirm bool) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	first, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	if len(first) == 0 {
		return "", errors.New("passphrase must not be empty")
	}
	if confirm {
		fmt.Fprint(os.Stderr, "Repeat passphrase: ")
		second, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read passphrase: %w", err)
		}
		if string(first) != string(second) {
			return "", errors.New("passphrases do not match")
		}
	}
	return string(first), nil
}

func init() {
	backupExportCmd.Flags().StringVar(&backupOut, "out", "", "output file (default: backup dir with dated name)")
	backupExportCmd.Flags().BoolVar(&backupEncrypt, "encrypt", false, "encrypt the backup with a passphrase")
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
	rootCmd.AddCommand(backupCmd)
}
