// ABOUTME: Point scoring curves for validated metric readings.
// ABOUTME: Threshold metrics earn progress plus an over-achievement bonus; heart rate targets a band.
package scoring

import (
	"math"

	"github.com/harperreed/stride/internal/models"
)

const (
	// MaxPoints caps the per-metric score.
	MaxPoints = 150

	// heartRateBand is the tolerance in bpm around the heart rate goal.
	heartRateBand = 15
)

// Score converts a (value, goal) pair into points and a goal-reached flag.
// Deterministic and pure. Value is clamped to >= 0 and goal to >= 1.
//
// Threshold metrics earn floor(min(value/goal, 1) * 100) base points plus
// floor((value-goal)/goal * 20) bonus once the goal is met, capped at 150.
// Heart rate is scored against a target band, not a minimum: more is not
// better, and there is no bonus.
func Score(metricType models.MetricType, value, goal float64) models.MetricScoreResult {
	if value < 0 {
		value = 0
	}
	if goal < 1 {
		goal = 1
	}

	if metricType == models.MetricHeartRate {
		return scoreHeartRate(value, goal)
	}

	progress := value / goal
	if progress > 1 {
		progress = 1
	}
	points := int(math.Floor(progress * 100))

	reached := value >= goal
	if reached {
		points += int(math.Floor((value - goal) / goal * 20))
	}
	if points > MaxPoints {
		points = MaxPoints
	}

	return models.MetricScoreResult{Points: points, GoalReached: reached}
}

// scoreHeartRate scores against a +/-15 bpm band around the goal.
// Progress falls linearly to zero at the band edge.
func scoreHeartRate(value, goal float64) models.MetricScoreResult {
	deviation := math.Abs(value - goal)
	progress := 1 - deviation/heartRateBand
	if progress < 0 {
		progress = 0
	}
	return models.MetricScoreResult{
		Points:      int(math.Floor(progress * 100)),
		GoalReached: deviation <= heartRateBand,
	}
}
