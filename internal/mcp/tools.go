// ABOUTME: MCP tool implementations for the scoring engine.
// ABOUTME: Exposes record/score/aggregate/trend/leaderboard operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/stride/internal/leaderboard"
	"github.com/harperreed/stride/internal/models"
)

func (s *Server) registerTools() {
	// record_metric
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_metric",
		Description: "Record an activity metric value and get its score and updated daily total",
	}, s.handleRecordMetric)

	// get_daily_total
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_daily_total",
		Description: "Get the point total and completed goal count for a day",
	}, s.handleGetDailyTotal)

	// get_weekly_total
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weekly_total",
		Description: "Get the aggregated point total for the week starting at a date",
	}, s.handleGetWeeklyTotal)

	// analyze_trends
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "analyze_trends",
		Description: "Classify a metric's trend, consistency, and suggested goal from its history",
	}, s.handleAnalyzeTrends)

	// get_leaderboard
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_leaderboard",
		Description: "Get the ranked daily or weekly leaderboard",
	}, s.handleGetLeaderboard)
}

// Tool input/output types

type recordMetricInput struct {
	MetricType string  `json:"metric_type" jsonschema:"Type of metric (steps, distance, calories, heart_rate, exercise, standing, basal_calories, flights_climbed)"`
	Value      float64 `json:"value" jsonschema:"The raw metric value"`
	Goal       float64 `json:"goal,omitempty" jsonschema:"Target value; defaults to the metric's standard goal"`
	Date       string  `json:"date,omitempty" jsonschema:"Calendar day (YYYY-MM-DD); defaults to today"`
}

type recordMetricOutput struct {
	MetricType  string `json:"metric_type"`
	Points      int    `json:"points"`
	GoalReached bool   `json:"goal_reached"`
	DailyTotal  int    `json:"daily_total"`
	Completed   int    `json:"metrics_completed"`
	Message     string `json:"message"`
}

type dailyTotalInput struct {
	Date string `json:"date,omitempty" jsonschema:"Calendar day (YYYY-MM-DD); defaults to today"`
}

type dailyTotalOutput struct {
	Date             string               `json:"date"`
	TotalPoints      int                  `json:"total_points"`
	MetricsCompleted int                  `json:"metrics_completed"`
	Scores           []models.MetricScore `json:"scores"`
}

type weeklyTotalInput struct {
	WeekStart string `json:"week_start" jsonschema:"First day of the week (YYYY-MM-DD)"`
}

type analyzeTrendsInput struct {
	MetricType string `json:"metric_type" jsonschema:"Metric type to analyze"`
	Days       int    `json:"days,omitempty" jsonschema:"History window in days (default 30)"`
}

type analyzeTrendsOutput struct {
	MetricType    string  `json:"metric_type"`
	Samples       int     `json:"samples"`
	Trend         string  `json:"trend"`
	Consistency   float64 `json:"consistency"`
	SuggestedGoal float64 `json:"suggested_goal"`
}

type leaderboardInput struct {
	Period string `json:"period,omitempty" jsonschema:"daily or weekly (default daily)"`
	Date   string `json:"date,omitempty" jsonschema:"Anchor day (YYYY-MM-DD); defaults to today"`
}

// Tool handlers

func (s *Server) handleRecordMetric(ctx context.Context, req *mcp.CallToolRequest, input recordMetricInput) (*mcp.CallToolResult, recordMetricOutput, error) {
	if !models.IsValidMetricType(input.MetricType) {
		return nil, recordMetricOutput{}, fmt.Errorf("unknown metric type: %s", input.MetricType)
	}

	date := input.Date
	if date == "" {
		date = models.DateOf(time.Now())
	}

	result, err := s.tracker.RecordMetricOn(ctx, s.userID, date, models.MetricType(input.MetricType), input.Value, input.Goal)
	if err != nil {
		return nil, recordMetricOutput{}, fmt.Errorf("failed to record metric: %w", err)
	}

	return nil, recordMetricOutput{
		MetricType:  input.MetricType,
		Points:      result.Score.Points,
		GoalReached: result.Score.GoalReached,
		DailyTotal:  result.Daily.TotalPoints,
		Completed:   result.Daily.MetricsCompleted,
		Message: fmt.Sprintf("Recorded %s: %.0f %s (%d points, daily total %d)",
			input.MetricType, input.Value, models.MetricUnits[models.MetricType(input.MetricType)],
			result.Score.Points, result.Daily.TotalPoints),
	}, nil
}

func (s *Server) handleGetDailyTotal(ctx context.Context, req *mcp.CallToolRequest, input dailyTotalInput) (*mcp.CallToolResult, dailyTotalOutput, error) {
	date := input.Date
	if date == "" {
		date = models.DateOf(time.Now())
	}

	total, scores, err := s.tracker.DailyTotal(ctx, s.userID, date)
	if err != nil {
		return nil, dailyTotalOutput{}, fmt.Errorf("failed to get daily total: %w", err)
	}

	return nil, dailyTotalOutput{
		Date:             date,
		TotalPoints:      total.TotalPoints,
		MetricsCompleted: total.MetricsCompleted,
		Scores:           scores,
	}, nil
}

func (s *Server) handleGetWeeklyTotal(ctx context.Context, req *mcp.CallToolRequest, input weeklyTotalInput) (*mcp.CallToolResult, models.WeeklyTotal, error) {
	total, err := s.tracker.WeeklyTotal(ctx, s.userID, input.WeekStart)
	if err != nil {
		return nil, models.WeeklyTotal{}, fmt.Errorf("failed to get weekly total: %w", err)
	}
	return nil, total, nil
}

func (s *Server) handleAnalyzeTrends(ctx context.Context, req *mcp.CallToolRequest, input analyzeTrendsInput) (*mcp.CallToolResult, analyzeTrendsOutput, error) {
	if !models.IsValidMetricType(input.MetricType) {
		return nil, analyzeTrendsOutput{}, fmt.Errorf("unknown metric type: %s", input.MetricType)
	}
	days := input.Days
	if days <= 0 {
		days = 30
	}

	report, err := s.tracker.Trends(ctx, s.userID, models.MetricType(input.MetricType), days)
	if err != nil {
		return nil, analyzeTrendsOutput{}, fmt.Errorf("failed to analyze trends: %w", err)
	}

	return nil, analyzeTrendsOutput{
		MetricType:    input.MetricType,
		Samples:       report.Samples,
		Trend:         string(report.Trend),
		Consistency:   report.Consistency,
		SuggestedGoal: report.SuggestedGoal,
	}, nil
}

func (s *Server) handleGetLeaderboard(ctx context.Context, req *mcp.CallToolRequest, input leaderboardInput) (*mcp.CallToolResult, any, error) {
	period := input.Period
	if period == "" {
		period = "daily"
	}
	date := input.Date
	if date == "" {
		date = models.DateOf(time.Now())
	}

	entries, err := s.boards.Leaderboard(ctx, period, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No leaderboard entries."}, nil
	}

	return nil, leaderboard.Rank(entries), nil
}
