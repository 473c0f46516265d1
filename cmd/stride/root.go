// ABOUTME: Root Cobra command for stride CLI.
// ABOUTME: Wires config, logger, remote store, local cache, and tracker.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harperreed/stride/internal/config"
	"github.com/harperreed/stride/internal/remote"
	"github.com/harperreed/stride/internal/storage"
	"github.com/harperreed/stride/internal/telemetry"
	"github.com/harperreed/stride/internal/tracker"
)

var (
	cfg    *config.Config
	logger *zap.Logger
	store  *remote.Client
	cache  *storage.Store
	trk    *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "stride",
	Short: "Fitness metric scoring and goal tracking",
	Long: `Stride scores your daily activity metrics against goals and ranks
you on a leaderboard.

HOW SCORING WORKS:

  Each metric earns up to 100 points for progress toward its goal, plus
  up to 50 bonus points for over-achievement. Heart rate is different:
  it targets a band around the goal, so staying close to target scores
  highest. Daily totals sum the points across all tracked metrics.

QUICK START:

  $ stride setup --user alice --name "Alice"   # Configure identity
  $ stride record steps 8000                   # Record today's steps
  $ stride record exercise 45 --goal 30        # Custom goal
  $ stride today                               # Today's scores and total
  $ stride trends steps                        # Trend and goal suggestion
  $ stride leaderboard                         # Daily rankings

METRIC TYPES:

  steps, distance (meters), calories, heart_rate (bpm), exercise (min),
  standing (hours), basal_calories, flights_climbed

MCP INTEGRATION:

  Run 'stride mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "setup" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.UserID == "" {
			return fmt.Errorf("no user configured - run 'stride setup --user <id>'")
		}

		logger, err = telemetry.NewLogger(cfg.GetLogLevel(), "console")
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		store = remote.NewClient(cfg.GetServerURL(), cfg.AuthToken, logger)

		// Cache is best-effort; another process may hold the lock.
		cache, _ = storage.Open(cfg.GetDataDir())

		opts := []tracker.Option{
			tracker.WithInstrumenter(telemetry.NewZapInstrumenter(logger)),
		}
		if cache != nil {
			opts = append(opts, tracker.WithCache(cache))
		}
		trk = tracker.New(store, opts...)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cache != nil {
			return cache.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(mcpCmd)
}
