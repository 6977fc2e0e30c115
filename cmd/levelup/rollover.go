// ABOUTME: CLI command reporting the midnight rollover.
// ABOUTME: The rollover itself runs lazily before every command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Show today's decay, goal and keep-level figures",
	Long: `The midnight rollover runs automatically before every command: the
score decays by 8 per missed day, and a daily goal plus the XP needed to
keep the current level are recomputed. This command just reports the
resulting figures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// PreRunE already rolled the day over; report the stored figures.
		st, err := trk.Status()
		if err != nil {
			return err
		}

		fmt.Printf("Score: %d (%s)\n", st.Score, st.Level)
		fmt.Printf("Goal:  %d XP today\n", st.GoalXP)
		if st.MinKeepXP > 0 {
			fmt.Printf("Keep:  %d XP to hold %s\n", st.MinKeepXP, st.Level)
		} else {
			fmt.Printf("Keep:  %s is safe today\n", st.Level)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rolloverCmd)
}
