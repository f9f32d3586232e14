package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/modality"
	"github.com/2beens/gymprs/internal/gymstats/onerm"
	"github.com/2beens/gymprs/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultCapabilityCacheSize   = 1024 * 1024 // 1MB is plenty for the exercise catalog
	DefaultCapabilityCacheExpire = 10 * 60     // seconds
)

//go:generate mockgen -source=$GOFILE -destination=capability_mocks_test.go -package=exercises_test

type exerciseTypeGetter interface {
	GetExerciseType(ctx context.Context, exerciseTypeID string) (ExerciseType, error)
}

type cachedType struct {
	Modality modality.Kind `json:"m"`
	Category string        `json:"c"`
}

// CapabilityProvider resolves an exercise's modality and category from the
// catalog, keeping recent lookups in a freecache.
type CapabilityProvider struct {
	repo        exerciseTypeGetter
	formula     onerm.Formula
	cache       *freecache.Cache
	cacheExpire int
}

func NewCapabilityProvider(
	repo exerciseTypeGetter,
	formula onerm.Formula,
	cacheSize int,
	cacheExpireSeconds int,
) *CapabilityProvider {
	if formula == nil {
		formula = onerm.Epley{}
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCapabilityCacheSize
	}
	if cacheExpireSeconds <= 0 {
		cacheExpireSeconds = DefaultCapabilityCacheExpire
	}
	return &CapabilityProvider{
		repo:        repo,
		formula:     formula,
		cache:       freecache.NewCache(cacheSize),
		cacheExpire: cacheExpireSeconds,
	}
}

func (p *CapabilityProvider) CapabilityFor(ctx context.Context, exerciseID string) (_ modality.Capability, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.exercises.capability")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	t, err := p.lookup(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("exercise.modality", t.Modality.String()))

	capability, err := modality.For(t.Modality, p.formula)
	if err != nil {
		return nil, fmt.Errorf("capability for exercise [%s]: %w", exerciseID, err)
	}
	return capability, nil
}

func (p *CapabilityProvider) CategoryFor(ctx context.Context, exerciseID string) (string, error) {
	t, err := p.lookup(ctx, exerciseID)
	if err != nil {
		return "", err
	}
	return t.Category, nil
}

// Invalidate drops the cached entry, call it after the exercise type changed.
func (p *CapabilityProvider) Invalidate(exerciseID string) {
	p.cache.Del(cacheKey(exerciseID))
}

func (p *CapabilityProvider) lookup(ctx context.Context, exerciseID string) (cachedType, error) {
	key := cacheKey(exerciseID)
	if cachedBytes, err := p.cache.Get(key); err == nil {
		var t cachedType
		if err := json.Unmarshal(cachedBytes, &t); err == nil {
			return t, nil
		}
		log.Errorf("unmarshal cached exercise type [%s]", exerciseID)
	}

	exerciseType, err := p.repo.GetExerciseType(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, ErrExerciseTypeNotFound) {
			return cachedType{}, fmt.Errorf("%w: %s", liftlogs.ErrUnknownExercise, exerciseID)
		}
		return cachedType{}, fmt.Errorf("get exercise type [%s]: %w", exerciseID, err)
	}

	kind, err := modality.ParseKind(exerciseType.Modality.String())
	if err != nil {
		return cachedType{}, fmt.Errorf("exercise type [%s]: %w", exerciseID, err)
	}
	t := cachedType{
		Modality: kind,
		Category: exerciseType.Category,
	}

	tBytes, err := json.Marshal(t)
	if err != nil {
		log.Errorf("marshal exercise type [%s] for cache: %s", exerciseID, err)
		return t, nil
	}
	if err := p.cache.Set(key, tBytes, p.cacheExpire); err != nil {
		log.Errorf("cache exercise type [%s]: %s", exerciseID, err)
	}
	return t, nil
}

func cacheKey(exerciseID string) []byte {
	return []byte("exercise-type::" + exerciseID)
}
