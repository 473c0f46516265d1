// ABOUTME: CLI command that suggests an adjusted goal for a metric.
// ABOUTME: Thin wrapper over the trend analyzer's goal suggestion.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/stride/internal/models"
)

var goalDays int

var goalCmd = &cobra.Command{
	Use:   "goal <type>",
	Short: "Suggest an adjusted goal for a metric",
	Long: `Suggest a new goal for a metric based on your recent performance.

For most metrics the suggestion nudges the goal above your recent average
so it stays challenging. Heart rate goals track your average directly.

Examples:
  stride goal steps
  stride goal exercise --days 14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metricType := args[0]
		if !models.IsValidMetricType(metricType) {
			return fmt.Errorf("unknown metric type: %s", metricType)
		}

		report, err := trk.Trends(cmd.Context(), cfg.UserID, models.MetricType(metricType), goalDays)
		if err != nil {
			return fmt.Errorf("failed to compute goal suggestion: %w", err)
		}

		unit := models.MetricUnits[models.MetricType(metricType)]
		if report.Samples == 0 {
			fmt.Printf("No recent %s data - starting from the default goal.\n", metricType)
		}
		color.Green("✓ Suggested %s goal: %.0f %s", metricType, report.SuggestedGoal, unit)
		if report.Samples > 0 {
			fmt.Printf("  based on %d samples over the last %d days\n", report.Samples, goalDays)
		}

		return nil
	},
}

func init() {
	goalCmd.Flags().IntVarP(&goalDays, "days", "d", 30, "history window in days")
}
