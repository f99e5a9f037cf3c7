package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mstanic/ironlog/internal/models"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [note...]",
	Short: "Record a coach note, or list them",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			entries, err := store.AllCoachFeedback(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No coach feedback yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%d  %s  %s\n", e.ID, formatMillis(e.Timestamp), e.Feedback)
			}
			return nil
		}

		id, err := store.AddCoachFeedback(cmd.Context(), strings.Join(args, " "), 0)
		if err != nil {
			return err
		}
		fmt.Printf("Saved note %d\n", id)
		return nil
	},
}

var feedbackDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a coach note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be an integer: %w", err)
		}
		if err := store.DeleteCoachFeedback(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted note %d\n", id)
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		goal, _ := cmd.Flags().GetString("goal")
		facts, _ := cmd.Flags().GetString("facts")

		if goal == "" && facts == "" {
			p, err := store.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Println("No profile saved yet. Use --goal / --facts to set one.")
				return nil
			}
			fmt.Printf("Goal:  %s\nFacts: %s\n", p.Goal, p.Facts)
			return nil
		}

		p, err := store.GetProfile(cmd.Context())
		if err != nil {
			return err
		}
		updated := profileOrEmpty(p)
		if goal != "" {
			updated.Goal = goal
		}
		if facts != "" {
			updated.Facts = facts
		}
		if err := store.SaveProfile(cmd.Context(), updated); err != nil {
			return err
		}
		fmt.Println("Profile saved.")
		return nil
	},
}

func profileOrEmpty(p *models.UserProfile) models.UserProfile {
	if p == nil {
		return models.UserProfile{}
	}
	return *p
}

func init() {
	feedbackCmd.AddCommand(feedbackDeleteCmd)
	profileCmd.Flags().String("goal", "", "training goal")
	profileCmd.Flags().String("facts", "", "freeform facts the coach should know")
	rootCmd.AddCommand(feedbackCmd, profileCmd)
}
