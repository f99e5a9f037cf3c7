package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mstanic/ironlog/internal/database"
	"github.com/mstanic/ironlog/internal/models"
)

var (
	logSessionID string
	logCompleted bool
	cardioTime   float64
	cardioPace   float64
)

var logCmd = &cobra.Command{
	Use:   "log <exercise-id> <value>",
	Short: "Record an exercise entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("value must be numeric: %w", err)
		}
		entry := models.WorkoutLogEntry{
			ExerciseID: args[0],
			Value:      value,
			Completed:  logCompleted,
			SessionID:  logSessionID,
		}
		id, err := store.AddWorkoutLog(cmd.Context(), entry)
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s = %g (entry %d)\n", args[0], value, id)
		return nil
	},
}

var cardioCmd = &cobra.Command{
	Use:   "cardio <activity> <distance-km>",
	Short: "Record a cardio activity (running, floorball, ...)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("distance must be numeric: %w", err)
		}
		entry := models.WorkoutLogEntry{
			ExerciseID: args[0],
			Value:      value,
			Completed:  true,
			SessionID:  args[0],
			Type:       models.LogTypeCardio,
			Time:       cardioTime,
			Pace:       cardioPace,
		}
		id, err := store.AddWorkoutLog(cmd.Context(), entry)
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s %g km (entry %d)\n", args[0], value, id)
		return nil
	},
}

var lastCmd = &cobra.Command{
	Use:   "last <exercise-id> [n]",
	Short: "Show the most recent entries for an exercise",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 2 {
			var err error
			if n, err = strconv.Atoi(args[1]); err != nil || n < 1 {
				return errors.New("n must be a positive integer")
			}
		}
		entries, err := store.LastNEntriesFor(cmd.Context(), args[0], n)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No entries yet.")
			return nil
		}
		for _, e := range entries {
			printEntry(cmd, e)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <session-id>",
	Short: "Show all entries for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.HistoryFor(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No entries yet.")
			return nil
		}
		for _, e := range entries {
			printEntry(cmd, e)
		}
		return nil
	},
}

func printEntry(cmd *cobra.Command, e models.WorkoutLogEntry) {
	name := e.ExerciseID
	if ex, err := store.GetExercise(cmd.Context(), e.ExerciseID); err == nil {
		name = ex.Name
	} else if !errors.Is(err, database.ErrNotFound) {
		// display falls back to the raw id on any lookup trouble
		name = e.ExerciseID
	}
	status := " "
	if e.Completed {
		status = "x"
	}
	fmt.Printf("[%s] %s  %s  %g  (%s)\n",
		status, formatMillis(e.Timestamp), name, e.Value, e.SessionID)
}

func init() {
	logCmd.Flags().StringVar(&logSessionID, "session", "", "session id the entry belongs to")
	logCmd.Flags().BoolVar(&logCompleted, "completed", true, "whether the exercise was completed")
	cardioCmd.Flags().Float64Var(&cardioTime, "time", 0, "duration in minutes")
	cardioCmd.Flags().Float64Var(&cardioPace, "pace", 0, "pace in min/km")
	rootCmd.AddCommand(logCmd, cardioCmd, lastCmd, historyCmd)
}
