// ABOUTME: Orchestration for metric updates: validate, score, persist, re-aggregate.
// ABOUTME: Applies optimistic cache updates with exact-snapshot rollback on failure.
package tracker

import (
	"context"
	"time"

	"github.com/harperreed/stride/internal/models"
	"github.com/harperreed/stride/internal/retry"
	"github.com/harperreed/stride/internal/scoring"
	"github.com/harperreed/stride/internal/storage"
	"github.com/harperreed/stride/internal/telemetry"
)

// Store is the remote persistence collaborator: an opaque row store with
// upsert-with-unique-key semantics.
type Store interface {
	ReadingsForDay(ctx context.Context, userID, date string) ([]*models.MetricReading, error)
	UpsertReading(ctx context.Context, r *models.MetricReading) error
	UpsertDailyTotal(ctx context.Context, t models.DailyTotal) error
	DailyTotals(ctx context.Context, userID, from, to string) ([]models.DailyTotal, error)
	Series(ctx context.Context, userID string, metricType models.MetricType, days int) ([]models.SeriesPoint, error)
}

// Tracker runs the scoring pipeline against the remote store.
type Tracker struct {
	store Store
	cache *storage.Store
	inst  telemetry.Instrumenter
	retry retry.Options
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithCache enables the optimistic local cache.
func WithCache(cache *storage.Store) Option {
	return func(t *Tracker) { t.cache = cache }
}

// WithInstrumenter sets the operation instrumenter.
func WithInstrumenter(inst telemetry.Instrumenter) Option {
	return func(t *Tracker) { t.inst = inst }
}

// WithRetryOptions overrides the default backoff configuration.
func WithRetryOptions(opts retry.Options) Option {
	return func(t *Tracker) { t.retry = opts }
}

// New creates a Tracker for the given store.
func New(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		inst:  telemetry.Nop{},
		retry: retry.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// UpdateResult is the outcome of one metric update.
type UpdateResult struct {
	Reading *models.MetricReading
	Score   models.MetricScoreResult
	Daily   models.DailyTotal
}

// RecordMetric records a value for today. A goal of 0 or less selects the
// metric's default goal.
func (t *Tracker) RecordMetric(ctx context.Context, userID string, metricType models.MetricType, value, goal float64) (*UpdateResult, error) {
	return t.RecordMetricOn(ctx, userID, models.DateOf(time.Now()), metricType, value, goal)
}

// RecordMetricOn runs the full update pipeline for one calendar day:
// validate, score, upsert the reading, refetch the day's readings, then
// recompute and upsert the daily total. Validation failures short-circuit
// before any network attempt. The daily total is always recomputed from
// the complete refetched set, never patched incrementally.
func (t *Tracker) RecordMetricOn(ctx context.Context, userID, date string, metricType models.MetricType, value, goal float64) (*UpdateResult, error) {
	if err := scoring.Validate(metricType, value); err != nil {
		return nil, err
	}
	if goal <= 0 {
		goal = models.DefaultGoals[metricType]
	}

	reading := models.NewReading(userID, metricType, value, goal).WithDate(date)
	score := scoring.Score(metricType, value, goal)
	meta := map[string]string{
		"user_id":     userID,
		"metric_type": string(metricType),
	}

	// Optimistic cache update; rolled back to the exact pre-update
	// snapshot if persistence fails.
	snapshot, err := t.applyOptimistic(reading)
	if err != nil {
		return nil, err
	}

	err = t.inst.MeasureOperation("upsert_reading", meta, func() error {
		return retry.Run(ctx, t.retry, func(ctx context.Context) error {
			return t.store.UpsertReading(ctx, reading)
		})
	})
	if err != nil {
		t.rollback(snapshot)
		return nil, err
	}

	var readings []*models.MetricReading
	err = t.inst.MeasureOperation("refetch_readings", meta, func() error {
		var fetchErr error
		readings, fetchErr = retry.Do(ctx, t.retry, func(ctx context.Context) ([]*models.MetricReading, error) {
			return t.store.ReadingsForDay(ctx, userID, date)
		})
		return fetchErr
	})
	if err != nil {
		t.rollback(snapshot)
		return nil, err
	}

	daily := scoring.AggregateDaily(userID, date, scoring.ScoreReadings(readings))

	err = t.inst.MeasureOperation("upsert_daily_total", meta, func() error {
		return retry.Run(ctx, t.retry, func(ctx context.Context) error {
			return t.store.UpsertDailyTotal(ctx, daily)
		})
	})
	if err != nil {
		// The reading write is durable; the stale total stands until the
		// next successful recomputation. Only the cache is rolled back.
		t.rollback(snapshot)
		return nil, err
	}

	t.refreshCache(readings, daily)

	return &UpdateResult{Reading: reading, Score: score, Daily: daily}, nil
}

// DailyTotal recomputes the total for (user, date) from a fresh read of
// the day's readings.
func (t *Tracker) DailyTotal(ctx context.Context, userID, date string) (models.DailyTotal, []models.MetricScore, error) {
	readings, err := retry.Do(ctx, t.retry, func(ctx context.Context) ([]*models.MetricReading, error) {
		return t.store.ReadingsForDay(ctx, userID, date)
	})
	if err != nil {
		return models.DailyTotal{}, nil, err
	}

	scores := scoring.ScoreReadings(readings)
	return scoring.AggregateDaily(userID, date, scores), scores, nil
}

// WeeklyTotal aggregates the seven daily totals starting at weekStart.
func (t *Tracker) WeeklyTotal(ctx context.Context, userID, weekStart string) (models.WeeklyTotal, error) {
	start, err := time.Parse(models.DateLayout, weekStart)
	if err != nil {
		return models.WeeklyTotal{}, err
	}
	weekEnd := start.AddDate(0, 0, 6).Format(models.DateLayout)

	days, err := retry.Do(ctx, t.retry, func(ctx context.Context) ([]models.DailyTotal, error) {
		return t.store.DailyTotals(ctx, userID, weekStart, weekEnd)
	})
	if err != nil {
		return models.WeeklyTotal{}, err
	}

	return scoring.AggregateWeekly(userID, weekStart, days), nil
}

// TrendReport bundles the descriptive analytics for one metric.
type TrendReport struct {
	MetricType    models.MetricType
	Samples       int
	Trend         scoring.Trend
	Consistency   float64
	SuggestedGoal float64
}

// Trends fetches the historical series for one metric and classifies it.
// Read-only; never mutates stored data.
func (t *Tracker) Trends(ctx context.Context, userID string, metricType models.MetricType, days int) (*TrendReport, error) {
	series, err := retry.Do(ctx, t.retry, func(ctx context.Context) ([]models.SeriesPoint, error) {
		return t.store.Series(ctx, userID, metricType, days)
	})
	if err != nil {
		return nil, err
	}

	return &TrendReport{
		MetricType:    metricType,
		Samples:       len(series),
		Trend:         scoring.CalculateTrend(series),
		Consistency:   scoring.AnalyzeConsistency(series),
		SuggestedGoal: scoring.SuggestGoalAdjustment(series, metricType),
	}, nil
}

// applyOptimistic writes the reading and a provisional total to the local
// cache, returning the pre-update snapshot for rollback.
func (t *Tracker) applyOptimistic(reading *models.MetricReading) (*storage.DaySnapshot, error) {
	if t.cache == nil {
		return nil, nil
	}

	snapshot, err := t.cache.SnapshotDay(reading.UserID, reading.Date)
	if err != nil {
		return nil, err
	}

	if err := t.cache.PutReading(reading); err != nil {
		t.rollback(snapshot)
		return nil, err
	}

	cached, err := t.cache.ReadingsForDay(reading.UserID, reading.Date)
	if err == nil {
		provisional := scoring.AggregateDaily(reading.UserID, reading.Date, scoring.ScoreReadings(cached))
		_ = t.cache.PutDailyTotal(provisional)
	}

	return snapshot, nil
}

func (t *Tracker) rollback(snapshot *storage.DaySnapshot) {
	if t.cache == nil || snapshot == nil {
		return
	}
	_ = t.cache.RestoreDay(snapshot)
}

// refreshCache replaces the optimistic rows with the authoritative state
// read back from the store.
func (t *Tracker) refreshCache(readings []*models.MetricReading, daily models.DailyTotal) {
	if t.cache == nil {
		return
	}
	for _, r := range readings {
		_ = t.cache.PutReading(r)
	}
	_ = t.cache.PutDailyTotal(daily)
}
