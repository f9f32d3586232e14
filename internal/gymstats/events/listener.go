package events

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/records"
	"github.com/2beens/gymprs/internal/telemetry/metrics"
	"github.com/2beens/gymprs/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=listener_mocks_test.go -package=events_test

type detector interface {
	DetectAndRecord(ctx context.Context, entry liftlogs.LiftLog) ([]records.PersonalRecord, error)
}

type recalculator interface {
	RecalculateScope(ctx context.Context, scope liftlogs.Scope) (records.RecalculationResult, error)
}

type logTimeline interface {
	HasLogsAfter(ctx context.Context, scope liftlogs.Scope, t time.Time, excludeID int) (bool, error)
}

type ledger interface {
	Records(ctx context.Context, scope liftlogs.Scope) ([]records.PersonalRecord, error)
}

type publisher interface {
	Publish(ctx context.Context, recs []records.PersonalRecord) error
	PublishRecalculated(ctx context.Context, scope liftlogs.Scope, reason string, result records.RecalculationResult) error
}

// LiftLogCompleted is raised after a lift log was stored (created or edited).
type LiftLogCompleted struct {
	Log      liftlogs.LiftLog
	IsUpdate bool
}

type Action string

const (
	ActionDetected     Action = "detected"
	ActionRecalculated Action = "recalculated"
)

const (
	ReasonUpdate    = "update"
	ReasonBackdated = "backdated"
	ReasonDeleted   = "deleted"
	ReasonRepair    = "repair"
	ReasonManual    = "manual"
)

// Outcome tells what the listener did with an event. Records holds the
// records the completed log sets.
type Outcome struct {
	Action        Action                       `json:"action"`
	Reason        string                       `json:"reason,omitempty"`
	Records       []records.PersonalRecord     `json:"records"`
	Recalculation *records.RecalculationResult `json:"recalculation,omitempty"`
}

type ListenerParams struct {
	Logs           logTimeline
	Detector       detector
	Recalculator   recalculator
	Ledger         ledger
	Publisher      publisher
	Locker         ScopeLocker
	Pending        PendingScopes
	MetricsManager *metrics.Manager
	// LockWait bounds the wait for a scope lock; zero waits as long as ctx allows.
	LockWait time.Duration
}

// Listener routes lift log events to the incremental detector or to a full
// recalculation. Detection is only used for a new log that is the latest of
// its scope; edits and backdated logs always rebuild the ledger.
type Listener struct {
	logs           logTimeline
	detector       detector
	recalculator   recalculator
	ledger         ledger
	publisher      publisher
	locker         ScopeLocker
	pending        PendingScopes
	metricsManager *metrics.Manager
	lockWait       time.Duration
}

func NewListener(params ListenerParams) *Listener {
	locker := params.Locker
	if locker == nil {
		locker = NewLocalLocker()
	}
	pending := params.Pending
	if pending == nil {
		pending = NewMemoryPendingScopes()
	}
	metricsManager := params.MetricsManager
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}

	return &Listener{
		logs:           params.Logs,
		detector:       params.Detector,
		recalculator:   params.Recalculator,
		ledger:         params.Ledger,
		publisher:      params.Publisher,
		locker:         locker,
		pending:        pending,
		metricsManager: metricsManager,
		lockWait:       params.LockWait,
	}
}

// HandleLiftLogCompleted updates the ledger for the log's scope. On failure
// the scope is marked pending, so the repair job rebuilds it later.
func (l *Listener) HandleLiftLogCompleted(ctx context.Context, event LiftLogCompleted) (_ Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.listener.completed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	scope := event.Log.Scope()
	span.SetAttributes(
		attribute.Int("liftlog.id", event.Log.ID),
		attribute.Bool("is-update", event.IsUpdate),
	)

	defer func() {
		if err != nil {
			l.markPending(ctx, scope, err)
		}
	}()

	unlock, err := l.lock(ctx, scope)
	if err != nil {
		return Outcome{}, err
	}
	defer unlock()

	reason := ""
	if event.IsUpdate {
		reason = ReasonUpdate
	} else {
		hasSubsequentLogs, err := l.logs.HasLogsAfter(ctx, scope, event.Log.LoggedAt, event.Log.ID)
		if err != nil {
			return Outcome{}, fmt.Errorf("check subsequent logs: %w", err)
		}
		if hasSubsequentLogs {
			reason = ReasonBackdated
		}
	}

	var outcome Outcome
	if reason == "" {
		outcome, err = l.detect(ctx, event.Log)
	} else {
		outcome, err = l.recalculate(ctx, scope, reason, event.Log.ID)
	}
	if err != nil {
		return Outcome{}, err
	}
	span.SetAttributes(attribute.String("action", string(outcome.Action)))

	for _, rec := range outcome.Records {
		l.metricsManager.CounterRecordsCreated.WithLabelValues(rec.Type.String()).Inc()
	}
	if len(outcome.Records) > 0 {
		if err := l.publisher.Publish(ctx, outcome.Records); err != nil {
			log.Errorf("publish [%d] records of lift log [%d]: %s", len(outcome.Records), event.Log.ID, err)
		}
	}

	return outcome, nil
}

// HandleLiftLogDeleted rebuilds the ledger of a scope that lost a log, or
// that a log was moved out of by an edit.
func (l *Listener) HandleLiftLogDeleted(ctx context.Context, scope liftlogs.Scope) (_ Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.listener.deleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return l.Recalculate(ctx, scope, ReasonDeleted)
}

// Recalculate rebuilds the scope's ledger under the scope lock.
func (l *Listener) Recalculate(ctx context.Context, scope liftlogs.Scope, reason string) (_ Outcome, err error) {
	defer func() {
		if err != nil {
			l.markPending(ctx, scope, err)
		}
	}()

	unlock, err := l.lock(ctx, scope)
	if err != nil {
		return Outcome{}, err
	}
	defer unlock()

	return l.recalculate(ctx, scope, reason, 0)
}

func (l *Listener) lock(ctx context.Context, scope liftlogs.Scope) (func(), error) {
	lockCtx := ctx
	if l.lockWait > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, l.lockWait)
		defer cancel()
	}

	start := time.Now()
	unlock, err := l.locker.Lock(lockCtx, scope)
	l.metricsManager.HistogramLockWait.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("lock scope [%s]: %w", scope, err)
	}
	return unlock, nil
}

func (l *Listener) detect(ctx context.Context, entry liftlogs.LiftLog) (Outcome, error) {
	created, err := l.detector.DetectAndRecord(ctx, entry)
	if err != nil {
		l.metricsManager.CounterDetections.WithLabelValues(metrics.OutcomeFailure).Inc()
		return Outcome{}, fmt.Errorf("detect records for lift log [%d]: %w", entry.ID, err)
	}
	l.metricsManager.CounterDetections.WithLabelValues(metrics.OutcomeSuccess).Inc()

	if created == nil {
		created = []records.PersonalRecord{}
	}
	return Outcome{
		Action:  ActionDetected,
		Records: created,
	}, nil
}

// recalculate expects the scope lock to be held. Records set by logID are
// reported in the outcome; logID 0 reports none.
func (l *Listener) recalculate(ctx context.Context, scope liftlogs.Scope, reason string, logID int) (Outcome, error) {
	start := time.Now()
	result, err := l.recalculator.RecalculateScope(ctx, scope)
	l.metricsManager.HistogramRecalculationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		l.metricsManager.CounterRecalculations.WithLabelValues(reason, metrics.OutcomeFailure).Inc()
		return Outcome{}, fmt.Errorf("recalculate scope [%s] (%s): %w", scope, reason, err)
	}
	l.metricsManager.CounterRecalculations.WithLabelValues(reason, metrics.OutcomeSuccess).Inc()
	log.Debugf("recalculated scope [%s] (%s): logs [%d], deleted [%d], created [%d]",
		scope, reason, result.LogsProcessed, result.RecordsDeleted, result.RecordsCreated)

	if err := l.publisher.PublishRecalculated(ctx, scope, reason, result); err != nil {
		log.Errorf("publish recalculation of scope [%s]: %s", scope, err)
	}

	outcome := Outcome{
		Action:        ActionRecalculated,
		Reason:        reason,
		Records:       []records.PersonalRecord{},
		Recalculation: &result,
	}
	if logID == 0 {
		return outcome, nil
	}

	recs, err := l.ledger.Records(ctx, scope)
	if err != nil {
		// the ledger is consistent already, only the report is incomplete
		log.Errorf("list records of scope [%s] after recalculation: %s", scope, err)
		return outcome, nil
	}
	for _, rec := range recs {
		if rec.LiftLogID == logID {
			outcome.Records = append(outcome.Records, rec)
		}
	}
	return outcome, nil
}

func (l *Listener) markPending(ctx context.Context, scope liftlogs.Scope, cause error) {
	log.Errorf("ledger of scope [%s] needs repair: %s", scope, cause)
	// the request context may be the reason of the failure
	markCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := l.pending.Mark(markCtx, scope); err != nil {
		log.Errorf("mark scope [%s] pending: %s", scope, err)
		return
	}
	l.refreshPendingGauge(markCtx)
}

func (l *Listener) refreshPendingGauge(ctx context.Context) {
	count, err := l.pending.Count(ctx)
	if err != nil {
		log.Errorf("count pending scopes: %s", err)
		return
	}
	l.metricsManager.GaugePendingScopes.Set(float64(count))
}
