// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fbwogus456-hub/levelup/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "levelup": {
        "command": "levelup",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  set_profile       Onboard and compute a starting score
  log_run           Log a run and earn XP
  log_study         Log a study session and earn XP
  log_focus         Log a distraction session
  complete_mission  Mark today's mission done
  get_status        Score, level, streak, today's budget
  get_history       Recent activity log
  get_weekly        7-day XP summary

AVAILABLE RESOURCES:

  levelup://status  Current status
  levelup://weekly  Weekly report
  levelup://export  Full data export`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mcpServer, err := mcp.NewServer(trk, store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return mcpServer.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
