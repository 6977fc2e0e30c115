// ABOUTME: CLI commands for the activity history and the weekly report.
// ABOUTME: Renders per-day XP tables with mission completion marks.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/spf13/cobra"
)

var historyDays int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "List recent activity, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := trk.History(historyDays)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No activity yet.")
			return nil
		}

		for _, e := range entries {
			var what string
			switch e.Type {
			case models.ActivityRun:
				what = fmt.Sprintf("run   %.1f km / %.0f min", e.Input.Km, e.Input.Minutes)
			case models.ActivityStudy:
				what = fmt.Sprintf("study %d sets", e.Input.Sets)
			case models.ActivityMission:
				what = "mission bonus"
			}
			fmt.Printf("%s  %-24s %s  score %d\n",
				e.Date, what,
				color.GreenString("+%d XP", e.XP), e.ScoreAfter)
		}
		return nil
	},
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show the 7-day report",
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, comment, err := trk.Weekly()
		if err != nil {
			return err
		}

		for _, d := range sum.Days {
			bar := ""
			for i := 0; i < d.XP/10; i++ {
				bar += "█"
			}
			line := fmt.Sprintf("%s  %3d XP  %s", d.Date, d.XP, color.CyanString(bar))
			if d.ClosingScore >= 0 {
				line += color.New(color.Faint).Sprintf("  score %d", d.ClosingScore)
			}
			fmt.Println(line)
		}

		fmt.Printf("\nTotal: %d XP (run %d, study %d)\n", sum.TotalXP, sum.RunXP, sum.StudyXP)
		if sum.MissionTotal > 0 {
			fmt.Printf("Missions: %d/%d (%d%%)\n", sum.MissionDone, sum.MissionTotal, sum.MissionRate())
		}
		if comment != "" {
			fmt.Printf("\n%s\n", color.CyanString(comment))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyDays, "days", "d", 7, "how many days back to list")
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(weeklyCmd)
}
