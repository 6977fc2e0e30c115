// ABOUTME: CLI command wiping all stored data after confirmation.
// ABOUTME: Requires typing the confirmation phrase unless --force is set.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and start over",
	Long: `Delete the profile, score, logs, focus history and UI state. This
cannot be undone; run 'levelup export' first if you want a backup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Print("This deletes everything. Type 'yes' to continue: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := trk.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Green("✓ All data deleted")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}
