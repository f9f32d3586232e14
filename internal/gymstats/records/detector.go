package records

import (
	"context"
	"fmt"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Detector is the incremental path: it decides which records a new log sets,
// assuming the log is the chronologically last one of its scope.
type Detector struct {
	store        Store
	capabilities CapabilityProvider
}

func NewDetector(store Store, capabilities CapabilityProvider) *Detector {
	return &Detector{
		store:        store,
		capabilities: capabilities,
	}
}

// DetectAndRecord stores the records entry sets, together with the entry's
// is_pr / pr_count flags, in one transaction.
func (d *Detector) DetectAndRecord(ctx context.Context, entry liftlogs.LiftLog) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.records.detect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("liftlog.id", entry.ID),
		attribute.Int("user.id", entry.UserID),
		attribute.String("exercise.id", entry.ExerciseID),
	)

	capability, err := d.capabilities.CapabilityFor(ctx, entry.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("capability for [%s]: %w", entry.ExerciseID, err)
	}
	if !capability.SupportsOneRepMax() {
		log.Debugf("detect: exercise [%s] modality [%s] has no one rep max, skipping", entry.ExerciseID, capability.Kind())
		err = d.store.InScope(ctx, entry.Scope(), func(tx ScopeTx) error {
			return tx.SetLogFlags(ctx, entry.ID, false, 0)
		})
		if err != nil {
			return nil, fmt.Errorf("reset flags of log %d: %w", entry.ID, err)
		}
		return nil, nil
	}

	var created []PersonalRecord
	err = d.store.InScope(ctx, entry.Scope(), func(tx ScopeTx) error {
		created = nil

		position := entry.Position()
		prior, err := tx.ListLogs(ctx, &position)
		if err != nil {
			return fmt.Errorf("list prior logs: %w", err)
		}

		h := newHistory()
		for _, p := range prior {
			if p.ID == entry.ID {
				continue
			}
			h.observe(capability, p)
		}

		for _, c := range h.evaluate(capability, entry) {
			previous, err := tx.LatestRecord(ctx, c.key)
			if err != nil {
				return fmt.Errorf("latest record [%s]: %w", c.key, err)
			}
			saved, err := tx.AddRecord(ctx, c.record(entry, previous))
			if err != nil {
				return fmt.Errorf("add record [%s]: %w", c.key, err)
			}
			created = append(created, *saved)
		}

		if err := tx.SetLogFlags(ctx, entry.ID, len(created) > 0, len(created)); err != nil {
			return fmt.Errorf("set log flags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("records.created", len(created)))
	return created, nil
}
