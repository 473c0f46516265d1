// ABOUTME: CLI command showing the weekly aggregate total.
// ABOUTME: Sums daily totals over the seven days starting at the week start.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/stride/internal/models"
)

var weekStart string

var weekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"w"},
	Short:   "Show this week's aggregate total",
	RunE: func(cmd *cobra.Command, args []string) error {
		start := weekStart
		if start == "" {
			start = mostRecentMonday(time.Now())
		}

		total, err := trk.WeeklyTotal(cmd.Context(), cfg.UserID, start)
		if err != nil {
			return fmt.Errorf("failed to get weekly total: %w", err)
		}

		fmt.Printf("%s\n\n", color.New(color.Bold).Sprintf("week of %s", start))
		fmt.Printf("  total:     %d points\n", total.TotalPoints)
		fmt.Printf("  goals met: %d\n", total.MetricsCompleted)
		fmt.Printf("  active:    %d of 7 days\n", total.DaysActive)

		return nil
	},
}

// mostRecentMonday returns the Monday on or before t.
func mostRecentMonday(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return models.DateOf(t.AddDate(0, 0, -offset))
}

func init() {
	weekCmd.Flags().StringVar(&weekStart, "start", "", "first day of the week YYYY-MM-DD (default: most recent Monday)")
}
