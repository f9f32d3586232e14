package events

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/telemetry/metrics"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultRepairSchedule  = "@every 1m"
	DefaultRepairBatchSize = 20
)

type scopeRecalculator interface {
	Recalculate(ctx context.Context, scope liftlogs.Scope, reason string) (Outcome, error)
}

// Repairer periodically rebuilds the ledgers of scopes whose incremental
// update failed.
type Repairer struct {
	pending        PendingScopes
	listener       scopeRecalculator
	batchSize      int
	timeout        time.Duration
	metricsManager *metrics.Manager

	cron *cron.Cron
}

func NewRepairer(
	pending PendingScopes,
	listener scopeRecalculator,
	batchSize int,
	metricsManager *metrics.Manager,
) *Repairer {
	if batchSize <= 0 {
		batchSize = DefaultRepairBatchSize
	}
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}
	return &Repairer{
		pending:        pending,
		listener:       listener,
		batchSize:      batchSize,
		timeout:        30 * time.Second,
		metricsManager: metricsManager,
	}
}

// RepairPending recalculates one batch of pending scopes. Scopes that fail
// again are marked pending by the listener. Returns the number repaired.
func (r *Repairer) RepairPending(ctx context.Context) (int, error) {
	scopes, err := r.pending.Pop(ctx, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("pop pending scopes: %w", err)
	}

	repaired := 0
	for _, scope := range scopes {
		if _, err := r.listener.Recalculate(ctx, scope, ReasonRepair); err != nil {
			log.Errorf("repair scope [%s]: %s", scope, err)
			continue
		}
		repaired++
		r.metricsManager.CounterScopesRepaired.Inc()
	}

	count, err := r.pending.Count(ctx)
	if err != nil {
		log.Errorf("count pending scopes: %s", err)
	} else {
		r.metricsManager.GaugePendingScopes.Set(float64(count))
	}

	if len(scopes) > 0 {
		log.Printf("repaired [%d/%d] pending scopes, [%d] left", repaired, len(scopes), count)
	}
	return repaired, nil
}

// Start runs RepairPending on the given cron schedule until Stop is called.
func (r *Repairer) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultRepairSchedule
	}

	c := cron.New()
	if err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if _, err := r.RepairPending(ctx); err != nil {
			log.Errorf("repair pending scopes: %s", err)
		}
	}); err != nil {
		return fmt.Errorf("add repair job [%s]: %w", schedule, err)
	}

	r.cron = c
	c.Start()
	log.Printf("ledger repair job scheduled: %s", schedule)
	return nil
}

func (r *Repairer) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}
