package events

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/records"
	"github.com/2beens/gymprs/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type eventsRepo interface {
	Add(ctx context.Context, events ...Event) ([]Event, error)
	List(ctx context.Context, params ListParams) ([]*Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

// Service turns PR engine results into stored notification events.
type Service struct {
	repo eventsRepo
	now  func() time.Time
}

func NewService(repo eventsRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Publish stores one personal_record event per record.
func (s *Service) Publish(ctx context.Context, recs []records.PersonalRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("records.count", len(recs)))

	if len(recs) == 0 {
		return nil
	}

	prEvents := make([]Event, 0, len(recs))
	for _, rec := range recs {
		prEvents = append(prEvents, NewPersonalRecordEvent(rec))
	}
	if _, err := s.repo.Add(ctx, prEvents...); err != nil {
		return fmt.Errorf("add personal record events: %w", err)
	}
	return nil
}

func (s *Service) PublishRecalculated(ctx context.Context, scope liftlogs.Scope, reason string, result records.RecalculationResult) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.publish.recalculated")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event := NewLedgerRecalculatedEvent(scope.UserID, scope.ExerciseID, reason, result, s.now())
	if _, err := s.repo.Add(ctx, event); err != nil {
		return fmt.Errorf("add ledger recalculated event: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *Service) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := s.repo.Count(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
