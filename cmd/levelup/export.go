// ABOUTME: CLI command for exporting all stored data as JSON.
// ABOUTME: Dumps state, profile, logs and history as one document.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export every stored record (profile, state, logs, focus history, UI
flags) keyed by its storage key. Suitable for backup.

Examples:
  levelup export                  # Print to stdout
  levelup export -o backup.json   # Save to file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, err := store.Dump()
		if err != nil {
			return fmt.Errorf("failed to export data: %w", err)
		}

		data, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
