package gymstats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/events"
	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/progression"
	"github.com/2beens/gymprs/internal/gymstats/records"
	"github.com/2beens/gymprs/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=gymstats_test

type liftLogsRepo interface {
	Add(ctx context.Context, log liftlogs.LiftLog) (*liftlogs.LiftLog, error)
	Update(ctx context.Context, log *liftlogs.LiftLog) (liftlogs.Scope, error)
	Delete(ctx context.Context, id int) (liftlogs.Scope, error)
	Get(ctx context.Context, id int) (*liftlogs.LiftLog, error)
	List(ctx context.Context, params liftlogs.ListParams) ([]liftlogs.LiftLog, error)
}

type ledgerListener interface {
	HandleLiftLogCompleted(ctx context.Context, event events.LiftLogCompleted) (events.Outcome, error)
	HandleLiftLogDeleted(ctx context.Context, scope liftlogs.Scope) (events.Outcome, error)
	Recalculate(ctx context.Context, scope liftlogs.Scope, reason string) (events.Outcome, error)
}

type ledgerReader interface {
	Records(ctx context.Context, scope liftlogs.Scope) ([]records.PersonalRecord, error)
}

type suggester interface {
	SuggestNext(ctx context.Context, userID int, exerciseID string, asOf *time.Time) (*progression.Suggestion, error)
}

// LogResult is a stored lift log with what the ledger made of it. Outcome is
// nil when the ledger update failed; the scope is then repaired later.
type LogResult struct {
	Log     *liftlogs.LiftLog `json:"log"`
	Outcome *events.Outcome   `json:"outcome,omitempty"`
}

// Service stores lift logs and keeps the PR ledger in step with them.
type Service struct {
	logs      liftLogsRepo
	listener  ledgerListener
	ledger    ledgerReader
	suggester suggester
}

func NewService(
	logs liftLogsRepo,
	listener ledgerListener,
	ledger ledgerReader,
	suggester suggester,
) *Service {
	return &Service{
		logs:      logs,
		listener:  listener,
		ledger:    ledger,
		suggester: suggester,
	}
}

func (s *Service) AddLog(ctx context.Context, entry liftlogs.LiftLog) (_ *LogResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.logs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.logs.Add(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("add lift log: %w", err)
	}
	span.SetAttributes(attribute.Int("liftlog.id", saved.ID))

	result := &LogResult{Log: saved}
	outcome, err := s.listener.HandleLiftLogCompleted(ctx, events.LiftLogCompleted{Log: *saved})
	if err != nil {
		log.Errorf("update ledger for new lift log [%d]: %s", saved.ID, err)
		return result, nil
	}
	result.Outcome = &outcome
	applyOutcome(saved, outcome)

	return result, nil
}

// UpdateLog stores the edited log and rebuilds its scope. If the edit moved
// the log to another user or exercise, the old scope is rebuilt too.
func (s *Service) UpdateLog(ctx context.Context, entry liftlogs.LiftLog) (_ *LogResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.logs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("liftlog.id", entry.ID))

	if entry.ID <= 0 {
		return nil, fmt.Errorf("%w: id missing", liftlogs.ErrInvalidLog)
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	oldScope, err := s.logs.Update(ctx, &entry)
	if err != nil {
		return nil, fmt.Errorf("update lift log: %w", err)
	}

	result := &LogResult{Log: &entry}
	outcome, err := s.listener.HandleLiftLogCompleted(ctx, events.LiftLogCompleted{Log: entry, IsUpdate: true})
	if err != nil {
		log.Errorf("update ledger for edited lift log [%d]: %s", entry.ID, err)
	} else {
		result.Outcome = &outcome
		applyOutcome(&entry, outcome)
	}

	if oldScope != entry.Scope() {
		if _, err := s.listener.HandleLiftLogDeleted(ctx, oldScope); err != nil {
			log.Errorf("update ledger of scope [%s] lift log [%d] moved out of: %s", oldScope, entry.ID, err)
		}
	}

	return result, nil
}

func (s *Service) DeleteLog(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("liftlog.id", id))

	scope, err := s.logs.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete lift log: %w", err)
	}

	if _, err := s.listener.HandleLiftLogDeleted(ctx, scope); err != nil {
		log.Errorf("update ledger after deleting lift log [%d]: %s", id, err)
	}
	return nil
}

func (s *Service) GetLog(ctx context.Context, id int) (*liftlogs.LiftLog, error) {
	return s.logs.Get(ctx, id)
}

func (s *Service) ListLogs(ctx context.Context, params liftlogs.ListParams) ([]liftlogs.LiftLog, error) {
	return s.logs.List(ctx, params)
}

// Records returns the scope's ledger, or only the current record of every
// chain when currentOnly is set.
func (s *Service) Records(ctx context.Context, scope liftlogs.Scope, currentOnly bool) (_ []records.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("current-only", currentOnly))

	recs, err := s.ledger.Records(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("records of scope [%s]: %w", scope, err)
	}
	if currentOnly {
		recs = records.Current(recs)
	}
	return recs, nil
}

func (s *Service) Recalculate(ctx context.Context, scope liftlogs.Scope) (events.Outcome, error) {
	return s.listener.Recalculate(ctx, scope, events.ReasonManual)
}

func (s *Service) Suggest(ctx context.Context, scope liftlogs.Scope, asOf *time.Time) (*progression.Suggestion, error) {
	return s.suggester.SuggestNext(ctx, scope.UserID, scope.ExerciseID, asOf)
}

// applyOutcome mirrors the PR flags the ledger stored on the log, so the
// response does not need another read.
func applyOutcome(entry *liftlogs.LiftLog, outcome events.Outcome) {
	entry.PRCount = len(outcome.Records)
	entry.IsPR = entry.PRCount > 0
}
