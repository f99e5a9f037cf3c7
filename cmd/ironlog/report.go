package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mstanic/ironlog/internal/backup"
	"github.com/mstanic/ironlog/internal/stats"
	"github.com/mstanic/ironlog/internal/util"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the statistics rollup as a PDF",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logs, err := store.AllLogs(cmd.Context())
		if err != nil {
			return err
		}
		now := time.Now()
		rollup := stats.Rollup(logs, catalog, now)

		path := reportOut
		if path == "" {
			path = filepath.Join(util.DocumentsDir(),
				fmt.Sprintf("workout-report-%s.pdf", now.Format("2006-01-02")))
		}
		if err := backup.WriteWeeklyReportPDF(path, rollup, now); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", path)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output file (default: documents dir with dated name)")
	rootCmd.AddCommand(reportCmd)
}
