package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mstanic/ironlog/internal/stats"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("211"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	numberStyle = lipgloss.NewStyle().Bold(true)
	upStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, recent sessions and rollup statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logs, err := store.AllLogs(cmd.Context())
		if err != nil {
			return err
		}
		now := time.Now()
		completed := stats.CompletedSessions(logs, catalog, now.Location())
		streak := stats.Streak(completed, now)
		rollup := stats.RollupSessions(completed, now)

		fmt.Println(titleStyle.Render("ironlog stats"))
		fmt.Printf("%s %s\n", labelStyle.Render("Streak:"),
			numberStyle.Render(fmt.Sprintf("%d days", streak.Days)))
		switch {
		case streak.DaysSinceLastWorkout == 0:
			fmt.Println(upStyle.Render("You trained today."))
		case streak.HasWorkoutYesterday:
			fmt.Println(labelStyle.Render("Last workout was yesterday. Keep it going."))
		case streak.DaysSinceLastWorkout > 0:
			fmt.Println(downStyle.Render(
				fmt.Sprintf("%d days since your last workout.", streak.DaysSinceLastWorkout)))
		default:
			fmt.Println(labelStyle.Render("No workouts logged yet."))
		}
		fmt.Println()

		fmt.Printf("%s gym %d/%d/%d  cardio %d/%d/%d  (7d/30d/90d)\n",
			labelStyle.Render("Sessions:"),
			rollup.Gym7d, rollup.Gym30d, rollup.Gym90d,
			rollup.Cardio7d, rollup.Cardio30d, rollup.Cardio90d)
		fmt.Printf("%s %.1f per week, %.1f per month\n",
			labelStyle.Render("Average:"),
			rollup.AvgSessionsPerWeek, rollup.AvgSessionsPerMonth)
		fmt.Println()

		if len(completed) > 0 {
			fmt.Println(titleStyle.Render("Recent sessions"))
			limit := 10
			if len(completed) < limit {
				limit = len(completed)
			}
			for _, s := range completed[:limit] {
				fmt.Printf("  %s  %s\n", formatMillis(s.Timestamp), s.Name)
			}
			fmt.Println()
		}

		if len(rollup.Weekly) > 0 {
			fmt.Println(titleStyle.Render("Weekly summary"))
			limit := 8
			if len(rollup.Weekly) < limit {
				limit = len(rollup.Weekly)
			}
			for _, w := range rollup.Weekly[:limit] {
				bar := strings.Repeat("#", w.Gym) + strings.Repeat("~", w.Cardio)
				fmt.Printf("  %s  %-10s %d gym, %d cardio\n",
					w.WeekStart.Format("2006-01-02"), bar, w.Gym, w.Cardio)
			}
		}
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress <exercise-id>",
	Short: "Show the progression trend for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := store.AllLogs(cmd.Context())
		if err != nil {
			return err
		}
		p := stats.ComputeProgression(args[0], logs)
		if p == nil {
			fmt.Println("No completed entries for that exercise yet.")
			return nil
		}
		switch p.Trend {
		case stats.TrendNew:
			fmt.Printf("%s: %g (first entry)\n", args[0], p.Current)
		case stats.TrendUp:
			fmt.Printf("%s: %s\n", args[0],
				upStyle.Render(fmt.Sprintf("%g up from %g", p.Current, *p.Previous)))
		case stats.TrendDown:
			fmt.Printf("%s: %s\n", args[0],
				downStyle.Render(fmt.Sprintf("%g down from %g", p.Current, *p.Previous)))
		case stats.TrendSame:
			fmt.Printf("%s: holding at %g\n", args[0], p.Current)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, progressCmd)
}
