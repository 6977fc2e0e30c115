// ABOUTME: CLI commands for logging runs and study sessions.
// ABOUTME: Prints the XP award, streak and any freshly generated mission.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/fbwogus456-hub/levelup/internal/tracker"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an activity and earn XP",
}

var logRunCmd = &cobra.Command{
	Use:     "run <km> <minutes>",
	Aliases: []string{"r"},
	Short:   "Log a run",
	Long: `Log a run. XP scales with distance, with a bonus for a fast pace
(10 XP at 5:30 min/km or better, 5 XP at 6:30 or better), capped at 80.

Examples:
  levelup log run 5 25
  levelup log run 10.5 64`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid distance: %s", args[0])
		}
		minutes, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid minutes: %s", args[1])
		}

		res, err := trk.LogRun(cmd.Context(), km, minutes)
		if err != nil {
			return activityError(err)
		}
		printAward(fmt.Sprintf("Run %.1f km in %.0f min", km, minutes), res)
		return nil
	},
}

var logStudyCmd = &cobra.Command{
	Use:     "study <sets>",
	Aliases: []string{"s"},
	Short:   "Log a study session",
	Long: `Log a study session measured in sets. Each set is worth 8 XP,
capped at 80 per session.

Example:
  levelup log study 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid set count: %s", args[0])
		}

		res, err := trk.LogStudy(cmd.Context(), sets)
		if err != nil {
			return activityError(err)
		}
		printAward(fmt.Sprintf("Study %d sets", sets), res)
		return nil
	},
}

func activityError(err error) error {
	if errors.Is(err, tracker.ErrDailyCapReached) {
		color.Yellow("Daily XP cap reached — nothing was logged. Come back tomorrow.")
		return nil
	}
	return err
}

func printAward(what string, res *tracker.ApplyResult) {
	color.Green("✓ %s", what)
	if res.StreakBonus > 0 {
		fmt.Printf("  +%d XP (%d base, %d streak bonus)\n", res.XP, res.BaseXP, res.StreakBonus)
	} else {
		fmt.Printf("  +%d XP\n", res.XP)
	}
	fmt.Printf("  Score %d → %d, streak %d\n", res.ScoreBefore, res.ScoreAfter, res.Streak)

	if res.NewMission && res.Mission != nil {
		fmt.Printf("  %s %s (+%d XP)\n",
			color.CyanString("Today's mission:"), res.Mission.Text, res.Mission.BonusXP)
	}
}

func init() {
	logCmd.AddCommand(logRunCmd)
	logCmd.AddCommand(logStudyCmd)
	rootCmd.AddCommand(logCmd)
}
