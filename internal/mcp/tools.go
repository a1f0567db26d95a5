// ABOUTME: MCP tool implementations for the fitness log.
// ABOUTME: Exposes sessions, the exercise library, and analytics.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/fitlog/internal/analytics"
	"github.com/harperreed/fitlog/internal/logbook"
	"github.com/harperreed/fitlog/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_logs",
		Description: "List recent workout sessions, most recent first",
	}, s.handleListLogs)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_log",
		Description: "Get one workout session by ID or ID prefix",
	}, s.handleGetLog)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_log",
		Description: "Delete a workout session by ID or ID prefix",
	}, s.handleDeleteLog)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "personal_records",
		Description: "Get squat/bench/deadlift personal records (max completed-set weight)",
	}, s.handlePersonalRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "volume_trend",
		Description: "Get the training volume trend over the last 15 sessions",
	}, s.handleVolumeTrend)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "muscle_distribution",
		Description: "Get completed-set counts per muscle group",
	}, s.handleMuscleDistribution)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise library (builtin and custom)",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_custom_exercise",
		Description: "Add a custom exercise to the library",
	}, s.handleAddCustomExercise)
}

// Tool input/output types

type listLogsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type listLogsOutput struct {
	Logs []logSummary `json:"logs"`
}

type logSummary struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Mood      string  `json:"mood"`
	Exercises int     `json:"exercises"`
	Volume    float64 `json:"volume"`
}

type getLogInput struct {
	ID string `json:"id" jsonschema:"description=Log ID or prefix,required"`
}

type logOutput struct {
	Log models.DailyLog `json:"log"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type emptyInput struct{}

type recordsOutput struct {
	SquatKg    float64 `json:"squat_kg"`
	BenchKg    float64 `json:"bench_kg"`
	DeadliftKg float64 `json:"deadlift_kg"`
}

type volumeTrendOutput struct {
	Points []volumePoint `json:"points"`
}

type volumePoint struct {
	Date   string  `json:"date"`
	Volume float64 `json:"volume"`
}

type distributionOutput struct {
	Groups []groupCount `json:"groups"`
}

type groupCount struct {
	Group string `json:"group"`
	Label string `json:"label"`
	Sets  int    `json:"sets"`
}

type listExercisesOutput struct {
	Exercises []models.Exercise `json:"exercises"`
}

type addExerciseInput struct {
	Name  string `json:"name" jsonschema:"description=Exercise name,required"`
	Group string `json:"group" jsonschema:"description=Muscle group tag or English label (chest, shoulders, back, legs, arms, core, cardio),required"`
}

type exerciseOutput struct {
	Exercise models.Exercise `json:"exercise"`
	Message  string          `json:"message"`
}

// Tool handlers

func (s *Server) handleListLogs(ctx context.Context, req *mcp.CallToolRequest, input listLogsInput) (*mcp.CallToolResult, listLogsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	var out listLogsOutput
	for _, l := range s.book.Recent(limit) {
		out.Logs = append(out.Logs, logSummary{
			ID:        l.ID,
			Date:      l.Date.Format("2006-01-02"),
			Mood:      l.Mood,
			Exercises: len(l.Exercises),
			Volume:    analytics.LogVolume(l),
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetLog(ctx context.Context, req *mcp.CallToolRequest, input getLogInput) (*mcp.CallToolResult, logOutput, error) {
	l, err := s.book.Resolve(input.ID)
	if err != nil {
		return nil, logOutput{}, fmt.Errorf("get log: %w", err)
	}
	return nil, logOutput{Log: l}, nil
}

func (s *Server) handleDeleteLog(ctx context.Context, req *mcp.CallToolRequest, input getLogInput) (*mcp.CallToolResult, simpleOutput, error) {
	l, err := s.book.Resolve(input.ID)
	if err != nil {
		if err == logbook.ErrNotFound {
			return nil, simpleOutput{Message: "no matching log; nothing deleted"}, nil
		}
		return nil, simpleOutput{}, err
	}
	if err := s.book.Delete(l.ID); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("deleted log %s", shortID(l.ID))}, nil
}

// shortID trims long ids for display; short ids pass through whole.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (s *Server) handlePersonalRecords(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, recordsOutput, error) {
	prs := analytics.SBDRecords(s.book.All())
	return nil, recordsOutput{
		SquatKg:    prs.Squat,
		BenchKg:    prs.Bench,
		DeadliftKg: prs.Deadlift,
	}, nil
}

func (s *Server) handleVolumeTrend(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, volumeTrendOutput, error) {
	var out volumeTrendOutput
	for _, p := range analytics.VolumeTrend(s.book.All()) {
		out.Points = append(out.Points, volumePoint{Date: p.Date, Volume: p.Volume})
	}
	return nil, out, nil
}

func (s *Server) handleMuscleDistribution(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, distributionOutput, error) {
	var out distributionOutput
	for _, gc := range analytics.MuscleDistribution(s.book.All()) {
		out.Groups = append(out.Groups, groupCount{
			Group: string(gc.Group),
			Label: models.GroupLabels[gc.Group],
			Sets:  gc.Sets,
		})
	}
	return nil, out, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, listExercisesOutput, error) {
	return nil, listExercisesOutput{Exercises: s.catalog.All()}, nil
}

func (s *Server) handleAddCustomExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	group, ok := models.ParseMuscleGroup(input.Group)
	if !ok {
		return nil, exerciseOutput{}, fmt.Errorf("unknown muscle group: %s", input.Group)
	}

	ex, err := s.catalog.AddCustom(input.Name, group)
	if err != nil {
		return nil, exerciseOutput{}, err
	}
	return nil, exerciseOutput{
		Exercise: ex,
		Message:  fmt.Sprintf("added %s (%s)", ex.Name, models.GroupLabels[ex.Group]),
	}, nil
}
