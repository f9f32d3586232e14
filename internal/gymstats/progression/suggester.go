package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/modality"
	"github.com/2beens/gymprs/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=suggester_mocks_test.go -package=progression_test

type logReader interface {
	// Latest returns nil when the scope has no log (at or before asOf, if set).
	Latest(ctx context.Context, scope liftlogs.Scope, asOf *time.Time) (*liftlogs.LiftLog, error)
}

type exerciseInfo interface {
	CapabilityFor(ctx context.Context, exerciseID string) (modality.Capability, error)
	CategoryFor(ctx context.Context, exerciseID string) (string, error)
}

type Suggester struct {
	logs      logReader
	exercises exerciseInfo
	registry  *Registry
}

func NewSuggester(logs logReader, exercises exerciseInfo, registry *Registry) *Suggester {
	if registry == nil {
		registry = NewRegistry(nil)
	}
	return &Suggester{
		logs:      logs,
		exercises: exercises,
		registry:  registry,
	}
}

// SuggestNext returns nil, nil when there is nothing logged to progress from.
func (s *Suggester) SuggestNext(ctx context.Context, userID int, exerciseID string, asOf *time.Time) (_ *Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.progression.suggest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("exercise.id", exerciseID),
	)

	last, err := s.logs.Latest(ctx, liftlogs.Scope{UserID: userID, ExerciseID: exerciseID}, asOf)
	if err != nil {
		return nil, fmt.Errorf("latest lift log: %w", err)
	}
	if last == nil {
		return nil, nil
	}

	category, err := s.exercises.CategoryFor(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("category for [%s]: %w", exerciseID, err)
	}
	capability, err := s.exercises.CapabilityFor(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("capability for [%s]: %w", exerciseID, err)
	}

	strategy := s.registry.Resolve(category)
	span.SetAttributes(attribute.String("strategy", strategy.Name()))

	suggestion := strategy.Suggest(capability, *last)
	return &suggestion, nil
}
