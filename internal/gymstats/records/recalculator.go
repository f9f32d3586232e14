package records

import (
	"context"
	"fmt"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type RecalculationResult struct {
	LogsProcessed  int `json:"logsProcessed"`
	RecordsDeleted int `json:"recordsDeleted"`
	RecordsCreated int `json:"recordsCreated"`
}

// Recalculator is the consistency path: it throws away a scope's ledger and
// replays every log in chronological order. Used after edits, deletions and
// backdated logs, where the incremental path could link records wrongly.
type Recalculator struct {
	store        Store
	capabilities CapabilityProvider
}

func NewRecalculator(store Store, capabilities CapabilityProvider) *Recalculator {
	return &Recalculator{
		store:        store,
		capabilities: capabilities,
	}
}

// RecalculateScope rebuilds the ledger in a single transaction. The rebuilt
// chains are verified before commit; a broken chain rolls everything back.
func (r *Recalculator) RecalculateScope(ctx context.Context, scope liftlogs.Scope) (_ RecalculationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.records.recalculate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", scope.UserID),
		attribute.String("exercise.id", scope.ExerciseID),
	)

	capability, err := r.capabilities.CapabilityFor(ctx, scope.ExerciseID)
	if err != nil {
		return RecalculationResult{}, fmt.Errorf("capability for [%s]: %w", scope.ExerciseID, err)
	}

	var result RecalculationResult
	err = r.store.InScope(ctx, scope, func(tx ScopeTx) error {
		result = RecalculationResult{}

		deleted, err := tx.DeleteRecords(ctx)
		if err != nil {
			return fmt.Errorf("delete records: %w", err)
		}
		result.RecordsDeleted = deleted

		if err := tx.ResetLogFlags(ctx); err != nil {
			return fmt.Errorf("reset log flags: %w", err)
		}

		logs, err := tx.ListLogs(ctx, nil)
		if err != nil {
			return fmt.Errorf("list logs: %w", err)
		}
		result.LogsProcessed = len(logs)

		if !capability.SupportsOneRepMax() {
			return nil
		}

		h := newHistory()
		last := make(map[ChainKey]*PersonalRecord)
		for _, entry := range logs {
			candidates := h.evaluate(capability, entry)
			for _, c := range candidates {
				saved, err := tx.AddRecord(ctx, c.record(entry, last[c.key]))
				if err != nil {
					return fmt.Errorf("add record [%s] for log [%d]: %w", c.key, entry.ID, err)
				}
				last[c.key] = saved
			}
			if len(candidates) > 0 {
				if err := tx.SetLogFlags(ctx, entry.ID, true, len(candidates)); err != nil {
					return fmt.Errorf("set log flags [%d]: %w", entry.ID, err)
				}
			}
			result.RecordsCreated += len(candidates)
			h.observe(capability, entry)
		}

		rebuilt, err := tx.ListRecords(ctx)
		if err != nil {
			return fmt.Errorf("list rebuilt records: %w", err)
		}
		return VerifyChain(rebuilt)
	})
	if err != nil {
		return RecalculationResult{}, err
	}

	span.SetAttributes(
		attribute.Int("logs.processed", result.LogsProcessed),
		attribute.Int("records.deleted", result.RecordsDeleted),
		attribute.Int("records.created", result.RecordsCreated),
	)
	return result, nil
}
