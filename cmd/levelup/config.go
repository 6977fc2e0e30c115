// ABOUTME: CLI commands for viewing and changing tool configuration.
// ABOUTME: Backend, data directory and analyze URL live in config.json.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fbwogus456-hub/levelup/internal/config"
	"github.com/spf13/cobra"
)

var (
	configBackend    string
	configDataDir    string
	configAnalyzeURL string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tool configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Backend:     %s\n", cfg.GetBackend())
		fmt.Printf("Data dir:    %s\n", cfg.GetDataDir())
		fmt.Printf("Analyze URL: %s\n", cfg.GetAnalyzeURL())
		fmt.Printf("Config file: %s\n", config.GetConfigPath())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change configuration values",
	Long: `Change configuration values. Only the flags you pass are updated.

Examples:
  levelup config set --backend sqlite
  levelup config set --data-dir ~/levelup-data
  levelup config set --analyze-url http://myhost:8787/api/analyze`,
	RunE: func(cmd *cobra.Command, args []string) error {
		changed := false
		if cmd.Flags().Changed("backend") {
			if configBackend != "badger" && configBackend != "sqlite" {
				return fmt.Errorf("unknown backend: %q (want badger or sqlite)", configBackend)
			}
			cfg.Backend = configBackend
			changed = true
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = configDataDir
			changed = true
		}
		if cmd.Flags().Changed("analyze-url") {
			cfg.AnalyzeURL = configAnalyzeURL
			changed = true
		}

		if !changed {
			return fmt.Errorf("nothing to change, pass --backend, --data-dir or --analyze-url")
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Config saved")
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&configBackend, "backend", "", "storage backend (badger or sqlite)")
	configSetCmd.Flags().StringVar(&configDataDir, "data-dir", "", "data directory")
	configSetCmd.Flags().StringVar(&configAnalyzeURL, "analyze-url", "", "analyze endpoint URL")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
