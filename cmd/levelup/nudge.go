// ABOUTME: CLI command fetching the daily AI pressure message.
// ABOUTME: Falls back to a canned line when the analyze server is down.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Get a push toward today's XP goal",
	Long: `Ask the AI for a short message about how far you are from today's
goal and from the XP needed to keep your level. Falls back to canned
text when the analyze server is unreachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := trk.RequestNudge(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nudgeCmd)
}
