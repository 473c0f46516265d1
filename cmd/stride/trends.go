// ABOUTME: CLI command for trend, consistency, and goal suggestion analytics.
// ABOUTME: Read-only over the stored historical series.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/stride/internal/models"
	"github.com/harperreed/stride/internal/scoring"
)

var trendsDays int

var trendsCmd = &cobra.Command{
	Use:   "trends <type>",
	Short: "Analyze a metric's trend and suggest a goal",
	Long: `Classify a metric's recent trend, score its consistency, and suggest
an adjusted goal from the historical average.

Examples:
  stride trends steps
  stride trends heart_rate --days 14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metricType := args[0]
		if !models.IsValidMetricType(metricType) {
			return fmt.Errorf("unknown metric type: %s", metricType)
		}

		report, err := trk.Trends(cmd.Context(), cfg.UserID, models.MetricType(metricType), trendsDays)
		if err != nil {
			return fmt.Errorf("failed to analyze trends: %w", err)
		}

		trend := string(report.Trend)
		switch report.Trend {
		case scoring.TrendIncreasing:
			trend = color.GreenString("increasing ↑")
		case scoring.TrendDecreasing:
			trend = color.RedString("decreasing ↓")
		}

		fmt.Printf("%s (last %d days, %d samples)\n\n",
			color.New(color.Bold).Sprint(metricType), trendsDays, report.Samples)
		fmt.Printf("  trend:          %s\n", trend)
		fmt.Printf("  consistency:    %.0f%%\n", report.Consistency*100)
		fmt.Printf("  suggested goal: %.0f %s\n", report.SuggestedGoal, models.MetricUnits[models.MetricType(metricType)])

		return nil
	},
}

func init() {
	trendsCmd.Flags().IntVarP(&trendsDays, "days", "d", 30, "history window in days")
}
