// ABOUTME: MCP resource implementations for the fitness log.
// ABOUTME: Provides fitlog://report and fitlog://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/fitlog/internal/analytics"
	"github.com/harperreed/fitlog/internal/export"
)

func (s *Server) registerResources() {
	// fitlog://report - the full training report
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://report",
		Name:        "Training Report",
		Description: "Full human-readable training report, one section per session",
		MIMEType:    "text/markdown",
	}, s.handleReportResource)

	// fitlog://summary - dashboard headline numbers
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://summary",
		Name:        "Training Summary",
		Description: "Session totals, day streak, top exercise, and personal records",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleReportResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitlog://report",
			MIMEType: "text/markdown",
			Text:     export.Report(s.state),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	logs := s.book.All()
	summary := analytics.Summarize(logs)
	prs := analytics.SBDRecords(logs)

	result := map[string]interface{}{
		"generated_at":   time.Now().Format(time.RFC3339),
		"total_workouts": summary.TotalWorkouts,
		"streak_days":    summary.StreakDays,
		"top_exercise":   summary.TopExercise,
		"records": map[string]float64{
			"squat_kg":    prs.Squat,
			"bench_kg":    prs.Bench,
			"deadlift_kg": prs.Deadlift,
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitlog://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
