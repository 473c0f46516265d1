// ABOUTME: CLI command for recording activity metrics.
// ABOUTME: Runs the validate-score-persist-reaggregate pipeline.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/stride/internal/models"
)

var (
	recordGoal float64
	recordDate string
)

var recordCmd = &cobra.Command{
	Use:     "record <type> <value>",
	Aliases: []string{"r"},
	Short:   "Record an activity metric",
	Long: `Record an activity metric value. The value is validated against the
metric's allowed range, scored against the goal, and the daily total is
recomputed.

Examples:
  stride record steps 8000
  stride record exercise 45 --goal 30
  stride record heart_rate 68
  stride record steps 12000 --date 2026-08-30`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		metricType := args[0]
		if !models.IsValidMetricType(metricType) {
			return fmt.Errorf("unknown metric type: %s\nValid types: steps, distance, calories, heart_rate, exercise, standing, basal_calories, flights_climbed", metricType)
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		ctx := cmd.Context()
		mt := models.MetricType(metricType)

		date := recordDate
		if date == "" {
			date = models.DateOf(time.Now())
		}

		result, err := trk.RecordMetricOn(ctx, cfg.UserID, date, mt, value, recordGoal)
		if err != nil {
			return err
		}

		reached := color.New(color.Faint).Sprint("goal not reached")
		if result.Score.GoalReached {
			reached = color.GreenString("goal reached")
		}

		color.Green("✓ Recorded %s", metricType)
		fmt.Printf("  %.0f %s → %d points (%s)\n",
			value, models.MetricUnits[mt], result.Score.Points, reached)
		fmt.Printf("  daily total: %d points, %d goals met\n",
			result.Daily.TotalPoints, result.Daily.MetricsCompleted)

		return nil
	},
}

func init() {
	recordCmd.Flags().Float64VarP(&recordGoal, "goal", "g", 0, "target value (default: the metric's standard goal)")
	recordCmd.Flags().StringVar(&recordDate, "date", "", "calendar day YYYY-MM-DD (default: today)")
}
