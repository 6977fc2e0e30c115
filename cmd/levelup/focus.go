// ABOUTME: CLI commands for the focus flow: log, timer, history, analysis.
// ABOUTME: Sessions are graded D through S on a 0-100 scale.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/spf13/cobra"
)

var (
	focusReason   string
	focusIntended bool
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Track screen distraction sessions",
	Long: `Track screen distraction sessions. Each session gets a 0-100 focus
score: longer sessions and worse reasons (video, social, game, chat,
shopping, news) cost more. Intended sessions count as deliberate breaks
and keep the focus streak alive; unintended drifting resets it.`,
}

var focusLogCmd = &cobra.Command{
	Use:   "log <screen> <minutes>",
	Short: "Log a session directly",
	Long: `Log a distraction session without the timer.

Examples:
  levelup focus log phone 30 --reason video
  levelup focus log youtube 15 --reason video --intended`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid minutes: %s", args[1])
		}

		entry, err := trk.LogFocus(args[0], minutes, focusReason, focusIntended)
		if err != nil {
			return err
		}
		printFocusEntry(entry)
		analyzeEntry(cmd, entry)
		return nil
	},
}

var focusStartCmd = &cobra.Command{
	Use:   "start <screen>",
	Short: "Start the session timer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := trk.StartFocus(args[0], focusReason, focusIntended); err != nil {
			return err
		}
		color.Green("✓ Timer started for %s", args[0])
		fmt.Println("  Run 'levelup focus stop' when you're done.")
		return nil
	},
}

var focusStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and score the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := trk.StopFocus()
		if err != nil {
			return err
		}
		printFocusEntry(entry)
		analyzeEntry(cmd, entry)
		return nil
	},
}

var focusHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List graded sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := trk.FocusHistory()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No focus sessions yet.")
			return nil
		}

		for _, e := range entries {
			line := fmt.Sprintf("%s  %-12s %5.0f min  %s %3d (%s)",
				e.Date, e.Screen, e.Minutes,
				color.New(color.Faint).Sprint("score"), e.FinalScore, e.Level)
			if e.Streak > 1 {
				line += fmt.Sprintf("  streak %d", e.Streak)
			}
			fmt.Println(line)
			if e.ResultText != "" {
				fmt.Printf("      %s\n", color.New(color.Faint).Sprint(e.ResultText))
			}
		}
		return nil
	},
}

var focusAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the AI analysis on the latest session",
	Long: `Send the most recent session to the analyze server for a three-line
breakdown: what happened, the likely cause and one suggestion. Requires
'levelup serve' to be running with OPENAI_API_KEY set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := trk.FocusHistory()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no focus sessions to analyze")
		}

		result, err := trk.AnalyzeFocus(cmd.Context(), entries[0])
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		fmt.Println(result)
		return nil
	},
}

// analyzeEntry runs the AI analysis for a freshly logged session. The
// session is already saved, so a failed analysis is a warning, not an
// error.
func analyzeEntry(cmd *cobra.Command, e *models.FocusEntry) {
	result, err := trk.AnalyzeFocus(cmd.Context(), e)
	if err != nil {
		color.Yellow("  Analysis unavailable: %v", err)
		return
	}
	fmt.Println(result)
}

func printFocusEntry(e *models.FocusEntry) {
	color.Green("✓ %s, %.0f min", e.Screen, e.Minutes)
	fmt.Printf("  Focus score %s (%s)",
		color.New(color.Bold).Sprintf("%d", e.FinalScore), e.Level)
	if e.Streak > 0 {
		fmt.Printf(", streak %d", e.Streak)
	}
	fmt.Println()
}

func init() {
	for _, c := range []*cobra.Command{focusLogCmd, focusStartCmd} {
		c.Flags().StringVar(&focusReason, "reason", "", "why (video, social, game, chat, shopping, news)")
		c.Flags().BoolVar(&focusIntended, "intended", false, "this was a deliberate break")
	}

	focusCmd.AddCommand(focusLogCmd)
	focusCmd.AddCommand(focusStartCmd)
	focusCmd.AddCommand(focusStopCmd)
	focusCmd.AddCommand(focusHistoryCmd)
	focusCmd.AddCommand(focusAnalyzeCmd)
	rootCmd.AddCommand(focusCmd)
}
