// ABOUTME: Tests for the point scoring curves.
// ABOUTME: Covers the cap, monotonicity, bonus math, and heart-rate band symmetry.
package scoring

import (
	"testing"

	"github.com/harperreed/stride/internal/models"
)

func TestScoreThresholdMetrics(t *testing.T) {
	tests := []struct {
		name        string
		metricType  models.MetricType
		value       float64
		goal        float64
		wantPoints  int
		wantReached bool
	}{
		{"below goal", models.MetricSteps, 8000, 10000, 80, false},
		{"exactly at goal", models.MetricSteps, 10000, 10000, 100, true},
		{"over goal with bonus", models.MetricSteps, 12000, 10000, 104, true},
		{"well over goal", models.MetricSteps, 25000, 10000, 130, true},
		{"capped at 150", models.MetricSteps, 100000, 10000, 150, true},
		{"zero value", models.MetricSteps, 0, 10000, 0, false},
		{"fractional progress floors", models.MetricSteps, 999, 10000, 9, false},
		{"exercise over goal", models.MetricExercise, 45, 30, 110, true},
		{"distance below goal", models.MetricDistance, 2500, 5000, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.metricType, tt.value, tt.goal)
			if got.Points != tt.wantPoints {
				t.Errorf("Score(%s, %g, %g).Points = %d, want %d",
					tt.metricType, tt.value, tt.goal, got.Points, tt.wantPoints)
			}
			if got.GoalReached != tt.wantReached {
				t.Errorf("Score(%s, %g, %g).GoalReached = %v, want %v",
					tt.metricType, tt.value, tt.goal, got.GoalReached, tt.wantReached)
			}
		})
	}
}

func TestScoreClampsInputs(t *testing.T) {
	// Negative value treated as zero
	if got := Score(models.MetricSteps, -500, 10000); got.Points != 0 || got.GoalReached {
		t.Errorf("negative value: got %+v, want 0 points, not reached", got)
	}

	// Goal below 1 clamped to 1; no division by zero
	got := Score(models.MetricSteps, 5, 0)
	if got.Points != 150 {
		t.Errorf("zero goal: got %d points, want 150 (capped)", got.Points)
	}
	if !got.GoalReached {
		t.Error("zero goal: goal should count as reached")
	}
}

func TestScoreNeverExceedsCap(t *testing.T) {
	for _, mt := range models.AllMetricTypes {
		r := models.MetricRanges[mt]
		for _, goal := range []float64{1, models.DefaultGoals[mt], r.Max} {
			for v := r.Min; v <= r.Max; v += (r.Max - r.Min) / 20 {
				got := Score(mt, v, goal)
				if got.Points < 0 || got.Points > MaxPoints {
					t.Fatalf("Score(%s, %g, %g).Points = %d, outside [0, %d]",
						mt, v, goal, got.Points, MaxPoints)
				}
			}
		}
	}
}

func TestScoreMonotonicBelowGoal(t *testing.T) {
	goal := 10000.0
	prev := -1
	for v := 0.0; v <= goal; v += 250 {
		got := Score(models.MetricSteps, v, goal)
		if got.Points < prev {
			t.Fatalf("points decreased at value %g: %d < %d", v, got.Points, prev)
		}
		prev = got.Points
	}
}

func TestScoreHeartRateBand(t *testing.T) {
	goal := 70.0

	// At goal: maximal progress
	at := Score(models.MetricHeartRate, goal, goal)
	if at.Points != 100 || !at.GoalReached {
		t.Errorf("at goal: got %+v, want 100 points, reached", at)
	}

	// Symmetric zero at band edges
	low := Score(models.MetricHeartRate, goal-15, goal)
	high := Score(models.MetricHeartRate, goal+15, goal)
	if low.Points != 0 || high.Points != 0 {
		t.Errorf("band edges: got %d and %d points, want 0 and 0", low.Points, high.Points)
	}
	if !low.GoalReached || !high.GoalReached {
		t.Error("band edges should still count as goal reached")
	}

	// Outside the band: zero points, not reached
	out := Score(models.MetricHeartRate, goal+16, goal)
	if out.Points != 0 || out.GoalReached {
		t.Errorf("outside band: got %+v, want 0 points, not reached", out)
	}

	// Symmetric partial progress
	below := Score(models.MetricHeartRate, goal-6, goal)
	above := Score(models.MetricHeartRate, goal+6, goal)
	if below.Points != above.Points {
		t.Errorf("asymmetric band scores: %d vs %d", below.Points, above.Points)
	}
	if below.Points != 60 {
		t.Errorf("6 bpm off goal: got %d points, want 60", below.Points)
	}
}

func TestScoreHeartRateHasNoBonus(t *testing.T) {
	// Higher is not better for heart rate
	got := Score(models.MetricHeartRate, 140, 70)
	if got.Points != 0 || got.GoalReached {
		t.Errorf("hr far above goal: got %+v, want 0 points, not reached", got)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	a := Score(models.MetricSteps, 7431, 10000)
	b := Score(models.MetricSteps, 7431, 10000)
	if a != b {
		t.Errorf("non-deterministic score: %+v vs %+v", a, b)
	}
}
