// ABOUTME: Metric model and MetricType enum for fitness activity data.
// ABOUTME: Defines valid ranges, default goals, and the reading/score/total types.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MetricType represents the type of activity metric being tracked.
type MetricType string

const (
	MetricSteps          MetricType = "steps"
	MetricDistance       MetricType = "distance"
	MetricCalories       MetricType = "calories"
	MetricHeartRate      MetricType = "heart_rate"
	MetricExercise       MetricType = "exercise"
	MetricStanding       MetricType = "standing"
	MetricBasalCalories  MetricType = "basal_calories"
	MetricFlightsClimbed MetricType = "flights_climbed"
)

// Range is an inclusive [Min, Max] bound for a metric's raw value.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v falls within the inclusive range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// MetricRanges maps each metric type to its valid value range.
// Distance is in meters. Basal calories use the 800-4000 bound.
var MetricRanges = map[MetricType]Range{
	MetricSteps:          {Min: 0, Max: 100000},
	MetricDistance:       {Min: 0, Max: 100000},
	MetricCalories:       {Min: 0, Max: 10000},
	MetricHeartRate:      {Min: 30, Max: 220},
	MetricExercise:       {Min: 0, Max: 1440},
	MetricStanding:       {Min: 0, Max: 24},
	MetricBasalCalories:  {Min: 800, Max: 4000},
	MetricFlightsClimbed: {Min: 0, Max: 500},
}

// DefaultGoals maps metric types to their system default goals.
var DefaultGoals = map[MetricType]float64{
	MetricSteps:          10000,
	MetricDistance:       5000,
	MetricCalories:       500,
	MetricHeartRate:      70,
	MetricExercise:       30,
	MetricStanding:       12,
	MetricBasalCalories:  1800,
	MetricFlightsClimbed: 10,
}

// MetricUnits maps metric types to their display units.
var MetricUnits = map[MetricType]string{
	MetricSteps:          "steps",
	MetricDistance:       "m",
	MetricCalories:       "kcal",
	MetricHeartRate:      "bpm",
	MetricExercise:       "min",
	MetricStanding:       "hours",
	MetricBasalCalories:  "kcal",
	MetricFlightsClimbed: "flights",
}

// AllMetricTypes returns all valid metric types.
var AllMetricTypes = []MetricType{
	MetricSteps, MetricDistance, MetricCalories, MetricHeartRate,
	MetricExercise, MetricStanding, MetricBasalCalories, MetricFlightsClimbed,
}

// IsValidMetricType checks if a string is a valid metric type.
func IsValidMetricType(s string) bool {
	for _, mt := range AllMetricTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// DateLayout is the calendar-day key format used for aggregation.
const DateLayout = "2006-01-02"

// DateOf truncates a timestamp to its calendar day key.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// MetricReading is one (user, date, metricType) observation.
// Later writes for the same key overwrite, they do not append.
type MetricReading struct {
	ID         uuid.UUID  `json:"id"`
	UserID     string     `json:"user_id"`
	Date       string     `json:"date"`
	MetricType MetricType `json:"metric_type"`
	Value      float64    `json:"value"`
	Goal       float64    `json:"goal"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// NewReading creates a reading for today with a generated UUID.
func NewReading(userID string, metricType MetricType, value, goal float64) *MetricReading {
	now := time.Now()
	return &MetricReading{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       DateOf(now),
		MetricType: metricType,
		Value:      value,
		Goal:       goal,
		RecordedAt: now,
	}
}

// WithDate sets a custom calendar day on the reading.
func (r *MetricReading) WithDate(date string) *MetricReading {
	r.Date = date
	return r
}

// MetricScoreResult is the scored outcome for a single reading.
// Points are bounded to [0, 150] and recomputed on every update.
type MetricScoreResult struct {
	Points      int  `json:"points"`
	GoalReached bool `json:"goal_reached"`
}

// MetricScore pairs a metric type with its score result for aggregation.
type MetricScore struct {
	MetricType  MetricType `json:"metric_type"`
	Points      int        `json:"points"`
	GoalReached bool       `json:"goal_reached"`
}

// DailyTotal is the per-user per-day aggregate across all metric types.
type DailyTotal struct {
	UserID           string `json:"user_id"`
	Date             string `json:"date"`
	TotalPoints      int    `json:"total_points"`
	MetricsCompleted int    `json:"metrics_completed"`
}

// WeeklyTotal sums a user's daily totals over the seven days
// starting at WeekStart.
type WeeklyTotal struct {
	UserID           string `json:"user_id"`
	WeekStart        string `json:"week_start"`
	TotalPoints      int    `json:"total_points"`
	MetricsCompleted int    `json:"metrics_completed"`
	DaysActive       int    `json:"days_active"`
}

// SeriesPoint is one dated value in a historical series.
// Series are supplied in chronological order, oldest first.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
