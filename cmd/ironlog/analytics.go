package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mstanic/ironlog/internal/backup"
)

var analyticsOut string

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Export a derived analytics document as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		doc, err := backup.BuildAnalytics(cmd.Context(), store, catalog, time.Now())
		if err != nil {
			return err
		}
		payload, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal analytics: %w", err)
		}
		if analyticsOut == "" {
			fmt.Println(string(payload))
			return nil
		}
		if err := os.WriteFile(analyticsOut, payload, 0o600); err != nil {
			return fmt.Errorf("write analytics %s: %w", analyticsOut, err)
		}
		fmt.Printf("Analytics written to %s\n", analyticsOut)
		return nil
	},
}

func init() {
	analyticsCmd.Flags().StringVar(&analyticsOut, "out", "", "output file (default: stdout)")
	rootCmd.AddCommand(analyticsCmd)
}
