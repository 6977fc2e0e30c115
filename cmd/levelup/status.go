// ABOUTME: CLI command showing score, level, streak and today's XP budget.
// ABOUTME: Renders the colored status card used as the default view.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show score, level, streak and today's XP",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := trk.Status()
		if err != nil {
			return err
		}

		fmt.Printf("Score:   %s (%s)\n",
			color.New(color.Bold).Sprintf("%d", st.Score), st.Level)
		fmt.Printf("Streak:  %d days\n", st.Streak)

		if st.CapReached {
			fmt.Printf("Today:   %d XP (%s)\n", st.TodayXP, color.YellowString("cap reached"))
		} else {
			fmt.Printf("Today:   %d XP, %d remaining\n", st.TodayXP, st.RemainingXP)
		}
		if st.GoalXP > 0 {
			fmt.Printf("Goal:    %d XP\n", st.GoalXP)
		}
		if st.MinKeepXP > 0 {
			fmt.Printf("Keep:    %d XP to hold %s\n", st.MinKeepXP, st.Level)
		}

		if st.Mission != nil {
			if st.Mission.Completed {
				fmt.Printf("Mission: %s %s\n", st.Mission.Text, color.GreenString("(done)"))
			} else {
				fmt.Printf("Mission: %s (+%d XP)\n", st.Mission.Text, st.Mission.BonusXP)
			}
		}

		h := int(st.ToMidnight.Hours())
		m := int(st.ToMidnight.Minutes()) % 60
		fmt.Printf("%s\n", color.New(color.Faint).Sprintf("%dh %dm until midnight", h, m))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
