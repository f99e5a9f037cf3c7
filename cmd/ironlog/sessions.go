package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List the session templates in the catalog",
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, tpl := range catalog.Templates() {
			fmt.Printf("%s  %s\n", tpl.ID, tpl.Name)
			for bi, block := range tpl.Blocks {
				rounds := ""
				if block.Rounds > 0 {
					rounds = fmt.Sprintf(" x%d", block.Rounds)
				}
				fmt.Printf("  block %d (%s%s, rest %ds/%ds)\n",
					bi+1, block.Type, rounds,
					block.Rest.BetweenExercisesSeconds, block.Rest.AfterRoundSeconds)
				for _, step := range block.Exercises {
					line := fmt.Sprintf("    %s: %d x %s", step.Name, step.Sets, step.Target.Describe())
					if step.Load != nil {
						line += ", " + step.Load.Describe()
					}
					if step.Tempo != "" {
						line += ", tempo " + step.Tempo
					}
					fmt.Println(line)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
