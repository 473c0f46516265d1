// ABOUTME: Daily and weekly aggregation of per-metric scores.
// ABOUTME: Totals are always recomputed from the complete input set, never patched.
package scoring

import (
	"time"

	"github.com/harperreed/stride/internal/models"
)

// ScoreReadings scores each reading and pairs the result with its metric type.
func ScoreReadings(readings []*models.MetricReading) []models.MetricScore {
	scores := make([]models.MetricScore, 0, len(readings))
	for _, r := range readings {
		result := Score(r.MetricType, r.Value, r.Goal)
		scores = append(scores, models.MetricScore{
			MetricType:  r.MetricType,
			Points:      result.Points,
			GoalReached: result.GoalReached,
		})
	}
	return scores
}

// AggregateDaily computes a day's total from the complete current set of
// per-metric scores. Callers must pass every score recorded for the day;
// recomputing from the full set keeps totals consistent when updates race
// or a metric is corrected retroactively.
func AggregateDaily(userID, date string, scores []models.MetricScore) models.DailyTotal {
	total := models.DailyTotal{UserID: userID, Date: date}
	for _, s := range scores {
		total.TotalPoints += s.Points
		if s.GoalReached {
			total.MetricsCompleted++
		}
	}
	return total
}

// AggregateWeekly sums daily totals over the seven days starting at
// weekStart. Days outside the window or with unparseable dates are ignored.
func AggregateWeekly(userID, weekStart string, days []models.DailyTotal) models.WeeklyTotal {
	total := models.WeeklyTotal{UserID: userID, WeekStart: weekStart}

	start, err := time.Parse(models.DateLayout, weekStart)
	if err != nil {
		return total
	}
	end := start.AddDate(0, 0, 7)

	for _, d := range days {
		day, err := time.Parse(models.DateLayout, d.Date)
		if err != nil || day.Before(start) || !day.Before(end) {
			continue
		}
		total.TotalPoints += d.TotalPoints
		total.MetricsCompleted += d.MetricsCompleted
		if d.TotalPoints > 0 {
			total.DaysActive++
		}
	}
	return total
}
