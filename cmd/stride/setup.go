// ABOUTME: CLI command for writing stride configuration.
// ABOUTME: Sets identity, server endpoint, and auth token.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/stride/internal/config"
)

var (
	setupUser   string
	setupName   string
	setupServer string
	setupToken  string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure stride",
	Long: `Write the stride config file.

Examples:
  stride setup --user alice --name "Alice"
  stride setup --server https://stride.example.com --token s3cret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if setupUser != "" {
			cfg.UserID = setupUser
		}
		if setupName != "" {
			cfg.Username = setupName
		}
		if setupServer != "" {
			cfg.ServerURL = setupServer
		}
		if setupToken != "" {
			cfg.AuthToken = setupToken
		}

		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Config saved")
		fmt.Printf("  %s\n", config.ConfigPath())
		return nil
	},
}

func init() {
	setupCmd.Flags().StringVar(&setupUser, "user", "", "user ID for metric writes")
	setupCmd.Flags().StringVar(&setupName, "name", "", "display name for leaderboards")
	setupCmd.Flags().StringVar(&setupServer, "server", "", "metric store API endpoint")
	setupCmd.Flags().StringVar(&setupToken, "token", "", "auth token for the metric store")
}
