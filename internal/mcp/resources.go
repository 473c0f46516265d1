// ABOUTME: MCP resource implementations for the scoring engine.
// ABOUTME: Provides stride://metric-types and stride://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/stride/internal/models"
)

func (s *Server) registerResources() {
	// stride://metric-types - the closed metric enumeration
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "stride://metric-types",
		Name:        "Metric Types",
		Description: "All tracked metric types with valid ranges, units, and default goals",
		MIMEType:    "application/json",
	}, s.handleMetricTypesResource)

	// stride://today - today's scores and total
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "stride://today",
		Name:        "Today's Scores",
		Description: "Per-metric scores and the daily total for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleMetricTypesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	type metricInfo struct {
		Type        string  `json:"type"`
		Unit        string  `json:"unit"`
		Min         float64 `json:"min"`
		Max         float64 `json:"max"`
		DefaultGoal float64 `json:"default_goal"`
	}

	infos := make([]metricInfo, 0, len(models.AllMetricTypes))
	for _, mt := range models.AllMetricTypes {
		r := models.MetricRanges[mt]
		infos = append(infos, metricInfo{
			Type:        string(mt),
			Unit:        models.MetricUnits[mt],
			Min:         r.Min,
			Max:         r.Max,
			DefaultGoal: models.DefaultGoals[mt],
		})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "stride://metric-types",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	date := models.DateOf(time.Now())

	total, scores, err := s.tracker.DailyTotal(ctx, s.userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily total: %w", err)
	}

	result := map[string]interface{}{
		"date":              date,
		"total_points":      total.TotalPoints,
		"metrics_completed": total.MetricsCompleted,
		"scores":            scores,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "stride://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
