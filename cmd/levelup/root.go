// ABOUTME: Root Cobra command for the levelup CLI.
// ABOUTME: Opens the store and runs the lazy midnight rollover in PreRunE.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fbwogus456-hub/levelup/internal/config"
	"github.com/fbwogus456-hub/levelup/internal/mission"
	"github.com/fbwogus456-hub/levelup/internal/storage"
	"github.com/fbwogus456-hub/levelup/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	store *storage.Store
	trk   *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "levelup",
	Short: "Gamified habit tracker",
	Long: `LevelUp turns daily habits into a game: log runs and study sessions,
earn XP toward a daily cap, keep a streak alive and climb the Bronze to
Diamond ladder. Your score decays a little every night, so showing up is
the whole game.

QUICK START:

  $ levelup profile set --age 25 --sleep 7.5 --height 175 --weight 70 \
      --exercise 3 --study 3                # Onboard and get a starting score
  $ levelup log run 5 25                    # 5 km in 25 minutes
  $ levelup log study 3                     # 3 study sets
  $ levelup status                          # Score, level, streak, today's XP
  $ levelup mission done                    # Complete today's AI mission

FOCUS TRACKING:

  $ levelup focus start phone --reason social   # Start the session timer
  $ levelup focus stop                          # Stop and score the session
  $ levelup focus log phone 30 --reason video   # Or log minutes directly
  $ levelup focus history                       # Graded session history

AI FEATURES:

  Missions, nudges and distraction analysis come from the analyze server
  ('levelup serve', needs OPENAI_API_KEY). Without it, missions and nudges
  fall back to canned text; nothing ever blocks on the AI.

MCP INTEGRATION:

  Run 'levelup mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "levelup": { "command": "levelup", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in ~/.local/share/levelup (Badger by default, sqlite via
  config). Everything is local; there is no account and no cloud.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// serve talks only to OpenAI; help/version need nothing.
		switch cmd.Name() {
		case "serve", "version", "help":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		trk = tracker.New(store, mission.NewClient(cfg.GetAnalyzeURL(), nil))

		// Lazy midnight pass: decay and fresh goals on the first command
		// of a new day.
		res, err := trk.MaybeRollover()
		if err != nil {
			return fmt.Errorf("rollover failed: %w", err)
		}
		if res != nil {
			color.New(color.Faint).Printf("New day: score decayed to %d (%s), goal %d XP\n",
				res.Decayed, res.Level, res.GoalXP)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}
