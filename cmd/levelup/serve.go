// ABOUTME: CLI command running the analyze HTTP server.
// ABOUTME: Config comes from the environment; requires OPENAI_API_KEY.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fbwogus456-hub/levelup/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analyze server",
	Long: `Run the HTTP server behind missions, nudges and distraction analysis.
The CLI posts to it at the configured analyze URL (default
http://localhost:8787/api/analyze).

ENVIRONMENT:

  OPENAI_API_KEY    required for AI responses (reported per request if missing)
  OPENAI_MODEL      model name (default gpt-4.1-mini)
  LEVELUP_ADDR      listen address (default :8787)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := server.LoadConfig()
		if err != nil {
			return err
		}

		log, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		if cfg.OpenAIKey == "" {
			color.Yellow("OPENAI_API_KEY is not set; requests will fail until it is.")
		}

		return server.New(cfg, log, nil).Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
