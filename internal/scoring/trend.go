// ABOUTME: Trend classification, consistency scoring, and goal suggestions.
// ABOUTME: Descriptive analytics over a chronological historical series; read-only.
package scoring

import (
	"math"

	"github.com/harperreed/stride/internal/models"
)

// Trend is a coarse three-way classification of a metric's recent movement.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// trendThreshold is the fraction of the first-half average the second-half
// average must move by to count as a trend.
const trendThreshold = 0.05

// CalculateTrend splits the series into first and second halves by index
// (the series must be chronological, oldest first) and compares averages.
// Fewer than 2 points is stable by definition.
func CalculateTrend(series []models.SeriesPoint) Trend {
	if len(series) < 2 {
		return TrendStable
	}

	mid := len(series) / 2
	first := mean(series[:mid])
	second := mean(series[mid:])

	threshold := first * trendThreshold
	switch {
	case second-first > threshold:
		return TrendIncreasing
	case first-second > threshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// AnalyzeConsistency returns 1 - stdDev/mean of the series values, floored
// at 0. Fewer than 2 points is perfectly consistent (returns 1).
func AnalyzeConsistency(series []models.SeriesPoint) float64 {
	if len(series) < 2 {
		return 1
	}

	avg := mean(series)
	sd := stdDev(series, avg)
	if avg == 0 {
		if sd == 0 {
			return 1
		}
		return 0
	}

	consistency := 1 - sd/avg
	if consistency < 0 {
		return 0
	}
	return consistency
}

// SuggestGoalAdjustment proposes a new goal from the historical average:
// +15% for exercise, +10% for other threshold metrics, rounded to the
// nearest integer. Heart rate gets the raw average since its goal is a
// target, not a minimum. An empty series falls back to the default goal.
func SuggestGoalAdjustment(series []models.SeriesPoint, metricType models.MetricType) float64 {
	if len(series) == 0 {
		return models.DefaultGoals[metricType]
	}

	avg := mean(series)
	switch metricType {
	case models.MetricHeartRate:
		return math.Round(avg)
	case models.MetricExercise:
		return math.Round(avg * 1.15)
	default:
		return math.Round(avg * 1.10)
	}
}

func mean(series []models.SeriesPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, p := range series {
		sum += p.Value
	}
	return sum / float64(len(series))
}

func stdDev(series []models.SeriesPoint, avg float64) float64 {
	var sumSq float64
	for _, p := range series {
		d := p.Value - avg
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(series)))
}
