package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewServer builds an MCP server with the gymstats tools: personal records,
// next workout suggestion, schema context, exercise types and lift logs.
// Served over stdio by cmd/gymstats_mcp and over HTTP at /mcp by the backend.
func NewServer(svc contextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymstats-prs",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the personal record ledger of a user for one exercise: one_rm and rep_specific records, each linked to the record it superseded. Args: user_id, exercise_id; optional current_only to get only the current record of every chain.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "suggest_next_workout",
		Description: "Suggests weight, reps and sets for the next session of an exercise, based on the most recent logged entry and the exercise's progression strategy (linear or double). Args: user_id, exercise_id; optional as_of (YYYY-MM-DD) to ignore later logs.",
	}, h.SuggestNextWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymstats_context",
		Description: "Returns the DB schema of the ledger tables (personal_record, lift_log, lift_log_set, exercise_type, gymstats_event): columns with type, nullable and default, then the indexes of every table.",
	}, h.GetGymstatsContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_types",
		Description: "Returns exercise types (id, muscle group, name, modality, category). Optional filters: muscle_group, category, exercise_id.",
	}, h.GetExerciseTypesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_lift_logs_for_time_range",
		Description: "Returns a user's lift logs (with sets and PR flags) logged within the given date range, newest first. Args: user_id, from_date, to_date (YYYY-MM-DD); optional exercise_id.",
	}, h.GetLiftLogsForTimeRangeTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP, traced with otelhttp.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	h := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
	return otelhttp.NewHandler(h, "mcp")
}
