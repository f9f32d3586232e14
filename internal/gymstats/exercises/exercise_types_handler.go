package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/modality"
	"github.com/2beens/gymprs/internal/telemetry/tracing"
	"github.com/2beens/gymprs/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=exercise_types_mocks_test.go -package=exercises_test

type exerciseTypesRepo interface {
	GetExerciseTypes(ctx context.Context, params GetExerciseTypesParams) ([]ExerciseType, error)
	AddExerciseType(ctx context.Context, exerciseType ExerciseType) error
	UpdateExerciseType(ctx context.Context, exerciseType ExerciseType) error
	DeleteExerciseType(ctx context.Context, exerciseTypeID string) error
}

type capabilityCache interface {
	Invalidate(exerciseID string)
}

type TypesHandler struct {
	repo            exerciseTypesRepo
	capabilityCache capabilityCache
}

func NewTypesHandler(repo exerciseTypesRepo, capabilityCache capabilityCache) *TypesHandler {
	return &TypesHandler{
		repo:            repo,
		capabilityCache: capabilityCache,
	}
}

func (handler *TypesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercise_types.new")
	defer span.End()

	exerciseType, ok := decodeExerciseType(w, r)
	if !ok {
		return
	}
	if exerciseType.CreatedAt.IsZero() {
		exerciseType.CreatedAt = time.Now()
	}

	if err := handler.repo.AddExerciseType(ctx, exerciseType); err != nil {
		log.Errorf("add exercise type: %s", err)
		http.Error(w, "add exercise type failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise type added: %+v", exerciseType)
	w.WriteHeader(http.StatusCreated)
}

func (handler *TypesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercise_types.get")
	defer span.End()

	exerciseTypes, err := handler.repo.GetExerciseTypes(ctx, GetExerciseTypesParams{
		MuscleGroup: r.URL.Query().Get("muscleGroup"),
		Category:    r.URL.Query().Get("category"),
		ExerciseID:  r.URL.Query().Get("id"),
	})
	if err != nil {
		log.Errorf("get exercise types: %s", err)
		http.Error(w, "get exercise types failed", http.StatusInternalServerError)
		return
	}
	if exerciseTypes == nil {
		exerciseTypes = []ExerciseType{}
	}

	exTypesJson, err := json.Marshal(exerciseTypes)
	if err != nil {
		log.Errorf("marshal exercise types: %s", err)
		http.Error(w, "get exercise types failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exTypesJson, http.StatusOK)
}

// HandleUpdate changes an exercise type. A changed modality does not touch
// existing records; recalculate the affected scopes to apply it.
func (handler *TypesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercise_types.update")
	defer span.End()

	exerciseType, ok := decodeExerciseType(w, r)
	if !ok {
		return
	}

	if err := handler.repo.UpdateExerciseType(ctx, exerciseType); err != nil {
		if errors.Is(err, ErrExerciseTypeNotFound) {
			http.Error(w, "exercise type not found", http.StatusNotFound)
			return
		}
		log.Errorf("update exercise type: %s", err)
		http.Error(w, "update exercise type failed", http.StatusInternalServerError)
		return
	}
	handler.capabilityCache.Invalidate(exerciseType.ID)

	log.Debugf("exercise type updated: %+v", exerciseType)
	w.WriteHeader(http.StatusNoContent)
}

func (handler *TypesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercise_types.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteExerciseType(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseTypeNotFound) {
			http.Error(w, "exercise type not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise type: %s", err)
		http.Error(w, "delete exercise type failed", http.StatusInternalServerError)
		return
	}
	handler.capabilityCache.Invalidate(id)

	log.Debugf("exercise type deleted: %s", id)
	w.WriteHeader(http.StatusNoContent)
}

// decodeExerciseType reads and validates the request body, writing the
// error response itself when it returns false.
func decodeExerciseType(w http.ResponseWriter, r *http.Request) (ExerciseType, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return ExerciseType{}, false
	}

	var exerciseType ExerciseType
	if err := json.NewDecoder(r.Body).Decode(&exerciseType); err != nil {
		log.Errorf("exercise type, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise type", http.StatusBadRequest)
		return ExerciseType{}, false
	}

	if exerciseType.ID == "" || exerciseType.MuscleGroup == "" || exerciseType.Name == "" {
		http.Error(w, "error, exercise id, muscle group, and name are required", http.StatusBadRequest)
		return ExerciseType{}, false
	}

	exerciseType.MuscleGroup = strings.ToLower(exerciseType.MuscleGroup)
	if !slices.Contains(MuscleGroups, exerciseType.MuscleGroup) {
		http.Error(w, "error, invalid muscle group", http.StatusBadRequest)
		return ExerciseType{}, false
	}

	kind, err := modality.ParseKind(exerciseType.Modality.String())
	if err != nil {
		http.Error(w, "error, invalid modality", http.StatusBadRequest)
		return ExerciseType{}, false
	}
	exerciseType.Modality = kind
	exerciseType.Category = strings.ToLower(strings.TrimSpace(exerciseType.Category))

	return exerciseType, true
}
