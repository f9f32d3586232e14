//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/2beens/gymprs/internal/gymstats"
	"github.com/2beens/gymprs/internal/gymstats/events"
	"github.com/2beens/gymprs/internal/gymstats/exercises"
	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/modality"
	"github.com/2beens/gymprs/internal/gymstats/onerm"
	"github.com/2beens/gymprs/internal/gymstats/records"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var baseDay = time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return baseDay.AddDate(0, 0, n)
}

func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, body, out any) int {
	status, err := s.tryDo(ctx, method, path, body, out)
	s.Require().NoError(err)
	return status
}

// tryDo does not fail the test, so it is safe to call from other goroutines.
func (s *IntegrationTestSuite) tryDo(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "GymStats/1.0")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if out != nil && resp.StatusCode < 300 {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return resp.StatusCode, fmt.Errorf("unmarshal [%s]: %w", respBytes, err)
		}
	}
	return resp.StatusCode, nil
}

func (s *IntegrationTestSuite) seedExerciseTypes(ctx context.Context) {
	for _, et := range []exercises.ExerciseType{
		{ID: "bench-press", MuscleGroup: exercises.MuscleGroup.Chest, Name: "Bench Press", Modality: modality.KindFreeWeight, Category: "compound"},
		{ID: "biceps-curl", MuscleGroup: exercises.MuscleGroup.Biceps, Name: "Biceps Curl", Modality: modality.KindFreeWeight, Category: "isolation"},
		{ID: "plank", MuscleGroup: exercises.MuscleGroup.Core, Name: "Plank", Modality: modality.KindTimedHold, Category: "core"},
	} {
		status := s.do(ctx, "POST", "/gymstats/types", et, nil)
		s.Require().Equal(http.StatusCreated, status, et.ID)
	}
}

func (s *IntegrationTestSuite) addLog(ctx context.Context, userID int, exerciseID string, at time.Time, sets ...liftlogs.Set) gymstats.LogResult {
	var result gymstats.LogResult
	status := s.do(ctx, "POST", "/gymstats/logs", liftlogs.LiftLog{
		UserID:     userID,
		ExerciseID: exerciseID,
		LoggedAt:   at,
		Sets:       sets,
	}, &result)
	s.Require().Equal(http.StatusCreated, status)
	s.Require().NotNil(result.Log)
	return result
}

func (s *IntegrationTestSuite) records(ctx context.Context, userID int, exerciseID string, currentOnly bool) []records.PersonalRecord {
	var resp gymstats.RecordsResponse
	path := fmt.Sprintf("/gymstats/records/user/%d/exercise/%s?current=%t", userID, exerciseID, currentOnly)
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", path, nil, &resp))
	return resp.Records
}

func (s *IntegrationTestSuite) getLog(ctx context.Context, id int) liftlogs.LiftLog {
	var entry liftlogs.LiftLog
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", fmt.Sprintf("/gymstats/logs/%d", id), nil, &entry))
	return entry
}

func oneRM(weight float64, reps int) float64 {
	v, _ := onerm.Epley{}.Estimate(weight, reps)
	return v
}

func (s *IntegrationTestSuite) TestLedger_InOrderDetection() {
	ctx := context.Background()

	first := s.addLog(ctx, 7, "bench-press", day(1), liftlogs.Set{Weight: 100, Reps: 5})
	s.Require().NotNil(first.Outcome)
	s.Equal(events.ActionDetected, first.Outcome.Action)
	s.True(first.Log.IsPR)
	s.Equal(1, first.Log.PRCount)

	second := s.addLog(ctx, 7, "bench-press", day(2), liftlogs.Set{Weight: 105, Reps: 3})
	s.False(second.Log.IsPR)
	s.Empty(second.Outcome.Records)

	third := s.addLog(ctx, 7, "bench-press", day(3), liftlogs.Set{Weight: 105, Reps: 5})
	s.True(third.Log.IsPR)
	s.Equal(2, third.Log.PRCount)

	recs := s.records(ctx, 7, "bench-press", false)
	s.Require().Len(recs, 3)
	s.NoError(records.VerifyChain(recs))

	current := s.records(ctx, 7, "bench-press", true)
	s.Require().Len(current, 2)
	for _, rec := range current {
		s.Equal(third.Log.ID, rec.LiftLogID)
		switch rec.Type {
		case records.TypeOneRM:
			s.InDelta(oneRM(105, 5), rec.Value, 0.01)
			s.Require().NotNil(rec.PreviousValue)
			s.InDelta(oneRM(100, 5), *rec.PreviousValue, 0.01)
		case records.TypeRepSpecific:
			s.Require().NotNil(rec.RepCount)
			s.Equal(5, *rec.RepCount)
			s.Equal(105.0, rec.Weight)
		default:
			s.Failf("unexpected record type", "%s", rec.Type)
		}
	}

	var eventsList events.ListResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/gymstats/events/list/page/1/size/20?type=personal_record&user=7", nil, &eventsList))
	s.Equal(3, eventsList.Total)
}

func (s *IntegrationTestSuite) TestLedger_BackdatedAndDeletedLogs() {
	ctx := context.Background()

	s.addLog(ctx, 7, "bench-press", day(1), liftlogs.Set{Weight: 100, Reps: 5})
	s.addLog(ctx, 7, "bench-press", day(2), liftlogs.Set{Weight: 105, Reps: 3})
	third := s.addLog(ctx, 7, "bench-press", day(3), liftlogs.Set{Weight: 105, Reps: 5})

	// heavier than everything after it: the whole scope is replayed
	backdated := s.addLog(ctx, 7, "bench-press", day(0), liftlogs.Set{Weight: 110, Reps: 5})
	s.Require().NotNil(backdated.Outcome)
	s.Equal(events.ActionRecalculated, backdated.Outcome.Action)
	s.Equal(events.ReasonBackdated, backdated.Outcome.Reason)
	s.True(backdated.Log.IsPR)

	recs := s.records(ctx, 7, "bench-press", false)
	s.Require().Len(recs, 1)
	s.Equal(backdated.Log.ID, recs[0].LiftLogID)
	s.InDelta(oneRM(110, 5), recs[0].Value, 0.01)
	s.False(s.getLog(ctx, third.Log.ID).IsPR)

	// the records the replay replaced are kept, soft-deleted
	var softDeleted, live int
	s.Require().NoError(s.DB.QueryRow(
		`SELECT count(*) FILTER (WHERE deleted_at IS NOT NULL), count(*) FILTER (WHERE deleted_at IS NULL)
		 FROM personal_record WHERE user_id = $1`, 7,
	).Scan(&softDeleted, &live))
	s.Greater(softDeleted, 0)
	s.Equal(1, live)

	var deleted gymstats.DeleteLogResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, "DELETE", fmt.Sprintf("/gymstats/logs/%d", backdated.Log.ID), nil, &deleted))
	s.Equal(backdated.Log.ID, deleted.DeletedID)

	recs = s.records(ctx, 7, "bench-press", false)
	s.Require().Len(recs, 3)
	s.NoError(records.VerifyChain(recs))
	s.Len(records.Current(recs), 2)
	restored := s.getLog(ctx, third.Log.ID)
	s.True(restored.IsPR)
	s.Equal(2, restored.PRCount)
}

func (s *IntegrationTestSuite) TestLedger_EditMovesLogToAnotherScope() {
	ctx := context.Background()

	first := s.addLog(ctx, 7, "bench-press", day(1), liftlogs.Set{Weight: 100, Reps: 5})
	s.addLog(ctx, 7, "biceps-curl", day(1), liftlogs.Set{Weight: 20, Reps: 10})

	edited := *first.Log
	edited.ExerciseID = "biceps-curl"
	edited.Sets = []liftlogs.Set{{Weight: 25, Reps: 10}}
	var result gymstats.LogResult
	s.Require().Equal(http.StatusOK, s.do(ctx, "PUT", "/gymstats/logs", edited, &result))
	s.Require().NotNil(result.Outcome)
	s.Equal(events.ActionRecalculated, result.Outcome.Action)

	s.Empty(s.records(ctx, 7, "bench-press", false))
	curls := s.records(ctx, 7, "biceps-curl", true)
	s.Require().Len(curls, 1)
	s.Equal(first.Log.ID, curls[0].LiftLogID)
}

func (s *IntegrationTestSuite) TestLedger_ModalityWithoutOneRepMax() {
	ctx := context.Background()

	result := s.addLog(ctx, 7, "plank", day(1), liftlogs.Set{Reps: 1, DurationSeconds: 90})
	s.False(result.Log.IsPR)
	s.Empty(s.records(ctx, 7, "plank", false))
}

func (s *IntegrationTestSuite) TestLedger_ConcurrentLogsStayConsistent() {
	ctx := context.Background()

	weights := []float64{80, 95, 85, 100, 90, 102.5, 97.5, 105, 92.5, 87.5}
	best := 0.0
	statuses := make([]int, len(weights))
	errs := make([]error, len(weights))
	var wg sync.WaitGroup
	for i, w := range weights {
		if v := oneRM(w, 5); v > best {
			best = v
		}
		wg.Add(1)
		go func(i int, w float64) {
			defer wg.Done()
			// reverse order, so most of the logs arrive backdated
			statuses[i], errs[i] = s.tryDo(ctx, "POST", "/gymstats/logs", liftlogs.LiftLog{
				UserID:     8,
				ExerciseID: "bench-press",
				LoggedAt:   day(len(weights) - i),
				Sets:       []liftlogs.Set{{Weight: w, Reps: 5}},
			}, nil)
		}(i, w)
	}
	wg.Wait()
	for i := range weights {
		s.Require().NoError(errs[i])
		s.Require().Equal(http.StatusCreated, statuses[i])
	}

	// failed ledger updates are repaired by the background job
	s.Eventually(func() bool {
		recs := s.records(ctx, 8, "bench-press", false)
		if records.VerifyChain(recs) != nil {
			return false
		}
		for _, rec := range records.Current(recs) {
			if rec.Type == records.TypeOneRM {
				return rec.Value > best-0.01 && rec.Value < best+0.01
			}
		}
		return false
	}, 15*time.Second, 250*time.Millisecond)
}

func (s *IntegrationTestSuite) TestRecalculate_RateLimited() {
	ctx := context.Background()
	s.addLog(ctx, 9, "bench-press", day(1), liftlogs.Set{Weight: 100, Reps: 5})

	path := "/gymstats/records/user/9/exercise/bench-press/recalculate"
	for i := 0; i < 3; i++ {
		var outcome events.Outcome
		s.Require().Equal(http.StatusOK, s.do(ctx, "POST", path, nil, &outcome))
		s.Equal(events.ReasonManual, outcome.Reason)
		s.Require().NotNil(outcome.Recalculation)
		s.Equal(1, outcome.Recalculation.LogsProcessed)
	}
	s.Equal(http.StatusTooManyRequests, s.do(ctx, "POST", path, nil, nil))
}

func (s *IntegrationTestSuite) TestSuggestion() {
	ctx := context.Background()

	var empty gymstats.SuggestionResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/gymstats/suggestion/user/7/exercise/bench-press", nil, &empty))
	s.Nil(empty.Suggestion)

	s.addLog(ctx, 7, "bench-press", day(1), liftlogs.Set{Weight: 100, Reps: 5}, liftlogs.Set{Weight: 100, Reps: 5})
	last := s.addLog(ctx, 7, "bench-press", day(3), liftlogs.Set{Weight: 102.5, Reps: 8}, liftlogs.Set{Weight: 102.5, Reps: 8})

	var resp gymstats.SuggestionResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/gymstats/suggestion/user/7/exercise/bench-press", nil, &resp))
	s.Require().NotNil(resp.Suggestion)
	s.Equal("linear", resp.Suggestion.Strategy)
	s.Equal(last.Log.ID, resp.Suggestion.BasedOnLogID)
	s.Equal(2, resp.Suggestion.SuggestedSets)
	s.Equal(8, resp.Suggestion.SuggestedReps)
	// e1RM of 102.5x8 at 5 reps is ~111.3, rounded to the 2.5 increment
	s.InDelta(112.5, resp.Suggestion.SuggestedWeight, 0.001)
	s.False(resp.Suggestion.WeightUnavailable)

	// as of the first day only the first log counts
	var asOf gymstats.SuggestionResponse
	path := fmt.Sprintf("/gymstats/suggestion/user/7/exercise/bench-press?as_of=%s", day(1).Format(time.DateOnly))
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", path, nil, &asOf))
	s.Require().NotNil(asOf.Suggestion)
	s.Equal(100.0, asOf.Suggestion.LastWeight)

	unknown := liftlogs.LiftLog{UserID: 7, ExerciseID: "unknown-exercise", LoggedAt: day(1), Sets: []liftlogs.Set{{Weight: 10, Reps: 10}}}
	s.Equal(http.StatusBadRequest, s.do(ctx, "POST", "/gymstats/logs", unknown, nil))
}

func (s *IntegrationTestSuite) TestMCP_PersonalRecords() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.addLog(ctx, 7, "bench-press", day(1), liftlogs.Set{Weight: 100, Reps: 5})

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: serverEndpoint + "/mcp"}, nil)
	s.Require().NoError(err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_personal_records",
		Arguments: map[string]any{"user_id": 7, "exercise_id": "bench-press"},
	})
	s.Require().NoError(err)
	s.Require().False(res.IsError)
	s.Require().NotEmpty(res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	s.Require().True(ok)
	s.Contains(text.Text, "one_rm")
}

func (s *IntegrationTestSuite) TestMCP_LedgerSchema() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: serverEndpoint + "/mcp"}, nil)
	s.Require().NoError(err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "get_gymstats_context", Arguments: map[string]any{}})
	s.Require().NoError(err)
	s.Require().False(res.IsError)
	s.Require().NotEmpty(res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	s.Require().True(ok)
	s.Contains(text.Text, "## personal_record")
	s.Contains(text.Text, "| deleted_at | timestamp with time zone | YES | - |")
	s.Contains(text.Text, "personal_record_chain_idx")
	s.Contains(text.Text, "WHERE (deleted_at IS NULL)")
}

func (s *IntegrationTestSuite) TestRecalculate_RebuildsLostRecords() {
	ctx := context.Background()
	first := s.addLog(ctx, 10, "bench-press", day(1), liftlogs.Set{Weight: 100, Reps: 5})

	// simulate a lost ledger update
	_, err := s.DB.Exec(`DELETE FROM personal_record WHERE user_id = $1`, 10)
	s.Require().NoError(err)
	s.Empty(s.records(ctx, 10, "bench-press", false))

	// two rebuilds racing on the same scope are serialized by the scope lock
	statuses := make([]int, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range statuses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			statuses[i], errs[i] = s.tryDo(ctx, "POST", "/gymstats/records/user/10/exercise/bench-press/recalculate", nil, nil)
		}(i)
	}
	wg.Wait()
	for i := range statuses {
		s.Require().NoError(errs[i])
		s.Equal(http.StatusOK, statuses[i])
	}

	recs := s.records(ctx, 10, "bench-press", false)
	s.Require().Len(recs, 1)
	s.Equal(first.Log.ID, recs[0].LiftLogID)
}

func (s *IntegrationTestSuite) TestLedger_SameSecondLogs() {
	ctx := context.Background()

	s.addLog(ctx, 7, "bench-press", day(1), liftlogs.Set{Weight: 100, Reps: 5})
	lighter := s.addLog(ctx, 7, "bench-press", day(1), liftlogs.Set{Weight: 50, Reps: 5})
	s.Require().NotNil(lighter.Outcome)
	s.Equal(events.ActionDetected, lighter.Outcome.Action)
	s.False(lighter.Log.IsPR)

	detected := s.records(ctx, 7, "bench-press", false)
	s.Require().Len(detected, 1)

	var outcome events.Outcome
	s.Require().Equal(http.StatusOK, s.do(ctx, "POST", "/gymstats/records/user/7/exercise/bench-press/recalculate", nil, &outcome))
	rebuilt := s.records(ctx, 7, "bench-press", false)
	s.Require().Len(rebuilt, 1)
	s.Equal(detected[0].LiftLogID, rebuilt[0].LiftLogID)
	s.Equal(detected[0].Value, rebuilt[0].Value)
}
