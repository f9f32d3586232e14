package gymstats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/events"
	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/progression"
	"github.com/2beens/gymprs/internal/gymstats/records"
	"github.com/2beens/gymprs/internal/telemetry/tracing"
	"github.com/2beens/gymprs/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gymstats_test

type service interface {
	AddLog(ctx context.Context, entry liftlogs.LiftLog) (*LogResult, error)
	UpdateLog(ctx context.Context, entry liftlogs.LiftLog) (*LogResult, error)
	DeleteLog(ctx context.Context, id int) error
	GetLog(ctx context.Context, id int) (*liftlogs.LiftLog, error)
	ListLogs(ctx context.Context, params liftlogs.ListParams) ([]liftlogs.LiftLog, error)
	Records(ctx context.Context, scope liftlogs.Scope, currentOnly bool) ([]records.PersonalRecord, error)
	Recalculate(ctx context.Context, scope liftlogs.Scope) (events.Outcome, error)
	Suggest(ctx context.Context, scope liftlogs.Scope, asOf *time.Time) (*progression.Suggestion, error)
}

type DeleteLogResponse struct {
	DeletedID int `json:"deletedId"`
}

type RecordsResponse struct {
	Scope   liftlogs.Scope           `json:"scope"`
	Records []records.PersonalRecord `json:"records"`
}

// SuggestionResponse carries a nil Suggestion and a Message when there is
// nothing to suggest.
type SuggestionResponse struct {
	Suggestion *progression.Suggestion `json:"suggestion"`
	Message    string                  `json:"message,omitempty"`
}

const noSuggestionMessage = "no suggestion available"

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the gymstats endpoints on a /gymstats subrouter.
// recalculateLimiter, when set, wraps the manual recalculation endpoint.
func (handler *Handler) SetupRoutes(r *mux.Router, recalculateLimiter mux.MiddlewareFunc) {
	var recalculate http.Handler = http.HandlerFunc(handler.HandleRecalculate)
	if recalculateLimiter != nil {
		recalculate = recalculateLimiter(recalculate)
	}
	r.Handle("/records/user/{user}/exercise/{exid}/recalculate", recalculate).Methods("POST")

	r.HandleFunc("/logs", handler.HandleAdd).Methods("POST")
	r.HandleFunc("/logs", handler.HandleUpdate).Methods("PUT")
	r.HandleFunc("/logs/{id}", handler.HandleGet).Methods("GET")
	r.HandleFunc("/logs/{id}", handler.HandleDelete).Methods("DELETE")
	r.HandleFunc("/logs/user/{user}/page/{page}/size/{size}", handler.HandleList).Methods("GET")
	r.HandleFunc("/records/user/{user}/exercise/{exid}", handler.HandleRecords).Methods("GET")
	r.HandleFunc("/suggestion/user/{user}/exercise/{exid}", handler.HandleSuggestion).Methods("GET")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.logs.new")
	defer span.End()

	entry, ok := decodeLiftLog(w, r)
	if !ok {
		return
	}

	result, err := handler.service.AddLog(ctx, entry)
	if err != nil {
		writeLogError(w, "add", err)
		return
	}

	log.Debugf("new lift log added: [%d] [%s]: %d", result.Log.UserID, result.Log.ExerciseID, result.Log.ID)
	writeJSON(w, result, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.logs.update")
	defer span.End()

	entry, ok := decodeLiftLog(w, r)
	if !ok {
		return
	}

	result, err := handler.service.UpdateLog(ctx, entry)
	if err != nil {
		writeLogError(w, "update", err)
		return
	}

	log.Debugf("lift log updated: [%d] [%s]: %d", result.Log.UserID, result.Log.ExerciseID, result.Log.ID)
	writeJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.logs.get")
	defer span.End()

	id, ok := intVar(w, r, "id")
	if !ok {
		return
	}

	entry, err := handler.service.GetLog(ctx, id)
	if err != nil {
		writeLogError(w, "get", err)
		return
	}

	writeJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.logs.delete")
	defer span.End()

	id, ok := intVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.DeleteLog(ctx, id); err != nil {
		writeLogError(w, "delete", err)
		return
	}

	writeJSON(w, DeleteLogResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.logs.list")
	defer span.End()

	userID, ok := intVar(w, r, "user")
	if !ok {
		return
	}
	page, ok := intVar(w, r, "page")
	if !ok {
		return
	}
	size, ok := intVar(w, r, "size")
	if !ok {
		return
	}
	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	params := liftlogs.ListParams{
		Scope: liftlogs.Scope{
			UserID:     userID,
			ExerciseID: r.URL.Query().Get("exercise"),
		},
		Page: page - 1,
		Size: size,
	}
	log.Tracef("list lift logs - user %d, exercise [%s], page %d size %d", userID, params.ExerciseID, page, size)

	logs, err := handler.service.ListLogs(ctx, params)
	if err != nil {
		log.Errorf("list lift logs: %s", err)
		http.Error(w, "failed to get lift logs", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []liftlogs.LiftLog{}
	}

	writeJSON(w, logs, http.StatusOK)
}

// HandleRecords serves a scope's ledger; ?current=true narrows it to the
// current record of every chain.
func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.records.list")
	defer span.End()

	scope, ok := scopeVars(w, r)
	if !ok {
		return
	}
	currentOnly := false
	if currentStr := r.URL.Query().Get("current"); currentStr != "" {
		var err error
		currentOnly, err = strconv.ParseBool(currentStr)
		if err != nil {
			http.Error(w, "error, invalid <current> param", http.StatusBadRequest)
			return
		}
	}

	recs, err := handler.service.Records(ctx, scope, currentOnly)
	if err != nil {
		log.Errorf("get records [%s]: %s", scope, err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []records.PersonalRecord{}
	}

	writeJSON(w, RecordsResponse{Scope: scope, Records: recs}, http.StatusOK)
}

func (handler *Handler) HandleRecalculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.records.recalculate")
	defer span.End()

	scope, ok := scopeVars(w, r)
	if !ok {
		return
	}

	outcome, err := handler.service.Recalculate(ctx, scope)
	if err != nil {
		log.Errorf("recalculate [%s]: %s", scope, err)
		if errors.Is(err, events.ErrLockNotAcquired) {
			http.Error(w, "scope busy, try again later", http.StatusConflict)
			return
		}
		http.Error(w, "recalculation failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, outcome, http.StatusOK)
}

// HandleSuggestion serves the next workout suggestion. ?as_of takes a date
// (YYYY-MM-DD, the whole day included) or an RFC 3339 timestamp. Failures
// other than an unknown exercise answer with no suggestion.
func (handler *Handler) HandleSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.suggestion.get")
	defer span.End()

	scope, ok := scopeVars(w, r)
	if !ok {
		return
	}
	asOf, err := ParseAsOf(r.URL.Query().Get("as_of"))
	if err != nil {
		http.Error(w, "error, invalid <as_of> param", http.StatusBadRequest)
		return
	}

	suggestion, err := handler.service.Suggest(ctx, scope, asOf)
	if err != nil {
		log.Errorf("suggest next workout [%s]: %s", scope, err)
		if errors.Is(err, liftlogs.ErrUnknownExercise) {
			http.Error(w, "unknown exercise", http.StatusNotFound)
			return
		}
		suggestion = nil
	}

	resp := SuggestionResponse{Suggestion: suggestion}
	if suggestion == nil {
		resp.Message = noSuggestionMessage
	}
	writeJSON(w, resp, http.StatusOK)
}

// ParseAsOf reads an optional as-of parameter. A bare date means the end of
// that day, so logs from the whole day count.
func ParseAsOf(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		endOfDay := t.Add(24*time.Hour - time.Second)
		return &endOfDay, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeLiftLog(w http.ResponseWriter, r *http.Request) (liftlogs.LiftLog, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return liftlogs.LiftLog{}, false
	}

	var entry liftlogs.LiftLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("lift log, unmarshal json params: %s", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, fmt.Sprintf("lift log larger than %d bytes", maxErr.Limit), http.StatusRequestEntityTooLarge)
			return liftlogs.LiftLog{}, false
		}
		http.Error(w, "invalid lift log", http.StatusBadRequest)
		return liftlogs.LiftLog{}, false
	}
	return entry, true
}

func intVar(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	valueStr := mux.Vars(r)[name]
	if valueStr == "" {
		http.Error(w, "error, "+name+" empty", http.StatusBadRequest)
		return 0, false
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		http.Error(w, "error, "+name+" NaN", http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

func scopeVars(w http.ResponseWriter, r *http.Request) (liftlogs.Scope, bool) {
	userID, ok := intVar(w, r, "user")
	if !ok {
		return liftlogs.Scope{}, false
	}
	exerciseID := mux.Vars(r)["exid"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return liftlogs.Scope{}, false
	}
	return liftlogs.Scope{UserID: userID, ExerciseID: exerciseID}, true
}

func writeLogError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, liftlogs.ErrInvalidLog), errors.Is(err, liftlogs.ErrUnknownExercise):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, liftlogs.ErrLogNotFound):
		http.Error(w, "lift log not found", http.StatusNotFound)
	default:
		log.Errorf("%s lift log: %s", op, err)
		http.Error(w, "error, failed to "+op+" lift log", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any, statusCode int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
