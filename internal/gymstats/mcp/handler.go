package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/gymprs/internal/gymstats"
	"github.com/2beens/gymprs/internal/gymstats/exercises"
	"github.com/2beens/gymprs/internal/gymstats/liftlogs"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

const noSuggestionText = "No suggestion available."

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) GetGymstatsContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

type ExerciseTypesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (e.g. chest, legs)"`
	Category    string `json:"category,omitempty" jsonschema:"Filter by category (e.g. compound, isolation)"`
	ExerciseID  string `json:"exercise_id,omitempty" jsonschema:"Filter by exercise type id (e.g. bench-press)"`
}

func (h *Handler) GetExerciseTypesTool() func(context.Context, *mcp.CallToolRequest, ExerciseTypesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseTypesInput) (*mcp.CallToolResult, any, error) {
		types, err := h.service.GetExerciseTypes(ctx, exercises.GetExerciseTypesParams{
			MuscleGroup: in.MuscleGroup,
			Category:    in.Category,
			ExerciseID:  in.ExerciseID,
		})
		if err != nil {
			return errorResult("Error fetching exercise types: " + err.Error()), nil, nil
		}
		return jsonResult(types), nil, nil
	}
}

func scopeOf(userID int, exerciseID string) (liftlogs.Scope, *mcp.CallToolResult) {
	if userID <= 0 {
		return liftlogs.Scope{}, errorResult("Invalid user_id: must be positive")
	}
	if exerciseID == "" {
		return liftlogs.Scope{}, errorResult("Missing exercise_id")
	}
	return liftlogs.Scope{UserID: userID, ExerciseID: exerciseID}, nil
}

type PersonalRecordsInput struct {
	UserID      int    `json:"user_id" jsonschema:"User id"`
	ExerciseID  string `json:"exercise_id" jsonschema:"Exercise type id (e.g. bench-press)"`
	CurrentOnly bool   `json:"current_only,omitempty" jsonschema:"Only the current record of every chain"`
}

func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PersonalRecordsInput) (*mcp.CallToolResult, any, error) {
		scope, errResult := scopeOf(in.UserID, in.ExerciseID)
		if errResult != nil {
			return errResult, nil, nil
		}
		recs, err := h.service.GetPersonalRecords(ctx, scope, in.CurrentOnly)
		if err != nil {
			return errorResult("Error fetching personal records: " + err.Error()), nil, nil
		}
		return jsonResult(recs), nil, nil
	}
}

type SuggestNextInput struct {
	UserID     int    `json:"user_id" jsonschema:"User id"`
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise type id (e.g. bench-press)"`
	AsOf       string `json:"as_of,omitempty" jsonschema:"Only consider logs up to this date (YYYY-MM-DD) or time (RFC 3339)"`
}

// SuggestNextWorkoutTool answers with a plain "no suggestion" text when the
// scope has no history or the suggester fails.
func (h *Handler) SuggestNextWorkoutTool() func(context.Context, *mcp.CallToolRequest, SuggestNextInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SuggestNextInput) (*mcp.CallToolResult, any, error) {
		scope, errResult := scopeOf(in.UserID, in.ExerciseID)
		if errResult != nil {
			return errResult, nil, nil
		}
		asOf, err := gymstats.ParseAsOf(in.AsOf)
		if err != nil {
			return errorResult("Invalid as_of: use YYYY-MM-DD or RFC 3339"), nil, nil
		}

		suggestion, err := h.service.SuggestNext(ctx, scope, asOf)
		if err != nil {
			log.Errorf("mcp: suggest next workout [%s]: %s", scope, err)
			return textResult(noSuggestionText), nil, nil
		}
		if suggestion == nil {
			return textResult(noSuggestionText), nil, nil
		}
		return jsonResult(suggestion), nil, nil
	}
}

type LiftLogsTimeRangeInput struct {
	UserID     int    `json:"user_id" jsonschema:"User id"`
	ExerciseID string `json:"exercise_id,omitempty" jsonschema:"Filter by exercise type id (e.g. bench-press)"`
	FromDate   string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate     string `json:"to_date" jsonschema:"End date (YYYY-MM-DD)"`
}

func (h *Handler) GetLiftLogsForTimeRangeTool() func(context.Context, *mcp.CallToolRequest, LiftLogsTimeRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LiftLogsTimeRangeInput) (*mcp.CallToolResult, any, error) {
		if in.UserID <= 0 {
			return errorResult("Invalid user_id: must be positive"), nil, nil
		}
		from, err := time.Parse(time.DateOnly, in.FromDate)
		if err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, err := time.Parse(time.DateOnly, in.ToDate)
		if err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())

		logs, err := h.service.ListLiftLogs(ctx, liftlogs.ListParams{
			Scope: liftlogs.Scope{UserID: in.UserID, ExerciseID: in.ExerciseID},
			From:  &from,
			To:    &to,
			Size:  500,
		})
		if err != nil {
			return errorResult("Error listing lift logs: " + err.Error()), nil, nil
		}
		return jsonResult(logs), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
