// ABOUTME: CLI commands for viewing and completing today's mission.
// ABOUTME: Missions appear on the first activity of the day.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Show today's mission",
	Long: `Show today's mission. A mission is generated by the AI (or a canned
fallback) when you log your first activity of the day. Completing it is
worth 10 bonus XP within the daily cap.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := trk.Status()
		if err != nil {
			return err
		}
		if st.Mission == nil {
			fmt.Println("No mission yet today. Log an activity first.")
			return nil
		}

		if st.Mission.Completed {
			color.Green("✓ %s (done)", st.Mission.Text)
		} else {
			fmt.Printf("%s %s (+%d XP)\n",
				color.CyanString("Mission:"), st.Mission.Text, st.Mission.BonusXP)
		}
		return nil
	},
}

var missionDoneCmd = &cobra.Command{
	Use:   "done",
	Short: "Complete today's mission",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := trk.CompleteMission()
		if err != nil {
			return err
		}

		switch {
		case res.CapBlocked:
			color.Green("✓ Mission completed")
			color.Yellow("  The daily cap left no room for the bonus XP.")
		case res.BonusXP == 0:
			fmt.Println("Mission was already completed today.")
		default:
			color.Green("✓ Mission completed: +%d XP", res.BonusXP)
			fmt.Printf("  Score %d → %d\n", res.ScoreBefore, res.ScoreAfter)
		}
		return nil
	},
}

func init() {
	missionCmd.AddCommand(missionDoneCmd)
	rootCmd.AddCommand(missionCmd)
}
