package events

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/gymprs/internal/telemetry/tracing"
	"github.com/2beens/gymprs/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type service interface {
	List(ctx context.Context, params ListParams) ([]*Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

type ListResponse struct {
	Events []*Event `json:"events"`
	Total  int      `json:"total"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleList serves /gymstats/events/list/page/{page}/size/{size}, optionally
// filtered by ?type=, ?user= and ?exercise=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.events.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list events, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list events, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
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

	var params EventParams
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		eventType := EventType(typeStr)
		if !eventType.IsValid() {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}
		params.Type = &eventType
	}
	if userStr := r.URL.Query().Get("user"); userStr != "" {
		userID, err := strconv.Atoi(userStr)
		if err != nil {
			http.Error(w, "error, user id NaN", http.StatusBadRequest)
			return
		}
		params.UserID = &userID
	}
	if exerciseID := r.URL.Query().Get("exercise"); exerciseID != "" {
		params.ExerciseID = &exerciseID
	}

	events, err := h.service.List(ctx, ListParams{
		EventParams: params,
		Page:        page - 1,
		Size:        size,
	})
	if err != nil {
		log.Errorf("list events: %s", err)
		http.Error(w, "failed to get events", http.StatusInternalServerError)
		return
	}

	total, err := h.service.Count(ctx, params)
	if err != nil {
		log.Errorf("count events: %s", err)
		http.Error(w, "failed to get events", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Events: events,
		Total:  total,
	})
	if err != nil {
		log.Errorf("marshal events: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
