// ABOUTME: CLI command showing today's per-metric scores and daily total.
// ABOUTME: Recomputes the total from a fresh read of the day's readings.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/stride/internal/models"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's scores and total",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := todayDate
		if date == "" {
			date = models.DateOf(time.Now())
		}

		total, scores, err := trk.DailyTotal(cmd.Context(), cfg.UserID, date)
		if err != nil {
			return fmt.Errorf("failed to get daily total: %w", err)
		}

		if len(scores) == 0 {
			fmt.Printf("No metrics recorded for %s.\n", date)
			return nil
		}

		fmt.Printf("%s\n\n", color.New(color.Bold).Sprint(date))
		for _, s := range scores {
			mark := color.New(color.Faint).Sprint("·")
			if s.GoalReached {
				mark = color.GreenString("✓")
			}
			fmt.Printf("  %s %-16s %4d points\n", mark, s.MetricType, s.Points)
		}
		fmt.Printf("\n  total: %d points, %d of %d goals met\n",
			total.TotalPoints, total.MetricsCompleted, len(scores))

		return nil
	},
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "calendar day YYYY-MM-DD (default: today)")
}
