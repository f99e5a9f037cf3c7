package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight [kg]",
	Short: "Record a body-weight measurement, or list them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			entries, err := store.AllBodyWeights(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No body-weight entries yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %.1f kg\n", formatMillis(e.Timestamp), e.Weight)
			}
			return nil
		}

		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("weight must be numeric: %w", err)
		}
		if _, err := store.AddBodyWeight(cmd.Context(), weight, 0); err != nil {
			return err
		}
		fmt.Printf("Recorded %.1f kg\n", weight)
		return nil
	},
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

func init() {
	rootCmd.AddCommand(weightCmd)
}
