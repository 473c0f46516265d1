// ABOUTME: CLI command showing the ranked daily or weekly leaderboard.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/stride/internal/leaderboard"
	"github.com/harperreed/stride/internal/models"
)

var (
	leaderboardPeriod string
	leaderboardDate   string
)

var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Aliases: []string{"lb"},
	Short:   "Show the points leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := leaderboardDate
		if date == "" {
			date = models.DateOf(time.Now())
		}

		entries, err := store.Leaderboard(cmd.Context(), leaderboardPeriod, date)
		if err != nil {
			return fmt.Errorf("failed to get leaderboard: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No leaderboard entries.")
			return nil
		}

		ranked := leaderboard.Rank(entries)

		fmt.Printf("%s\n\n", color.New(color.Bold).Sprintf("%s leaderboard · %s", leaderboardPeriod, date))
		for _, e := range ranked {
			name := e.Username
			if e.UserID == cfg.UserID {
				name = color.CyanString("%s (you)", name)
			}
			fmt.Printf("  %2d. %-24s %5d points  %d goals\n",
				e.Rank, name, e.TotalPoints, e.MetricsCompleted)
		}

		return nil
	},
}

func init() {
	leaderboardCmd.Flags().StringVarP(&leaderboardPeriod, "period", "p", "daily", "ranking period: daily or weekly")
	leaderboardCmd.Flags().StringVar(&leaderboardDate, "date", "", "anchor day YYYY-MM-DD (default: today)")
}
