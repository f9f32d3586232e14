package records

import (
	"context"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/modality"
)

// CapabilityProvider resolves the modality capability of an exercise.
type CapabilityProvider interface {
	CapabilityFor(ctx context.Context, exerciseID string) (modality.Capability, error)
}

// ScopeTx gives access to a single scope's logs and records inside one
// atomic unit of work. Nothing done through it is visible to others until
// the function passed to Store.InScope returns nil.
type ScopeTx interface {
	// ListLogs returns the scope's logs ordered by (logged at, id), only the
	// ones replayed strictly before the given position when it is set.
	ListLogs(ctx context.Context, before *liftlogs.Position) ([]liftlogs.LiftLog, error)
	ListRecords(ctx context.Context) ([]PersonalRecord, error)
	// LatestRecord returns nil when the chain is empty.
	LatestRecord(ctx context.Context, key ChainKey) (*PersonalRecord, error)
	AddRecord(ctx context.Context, record PersonalRecord) (*PersonalRecord, error)
	// DeleteRecords soft-deletes every live record of the scope and returns
	// how many it deleted. Deleted records are left out of all reads above.
	DeleteRecords(ctx context.Context) (int, error)
	SetLogFlags(ctx context.Context, logID int, isPR bool, prCount int) error
	ResetLogFlags(ctx context.Context) error
}

// Store is the persistence boundary of the record ledger. InScope runs fn in
// a transaction that is committed when fn returns nil and rolled back
// otherwise; concurrent InScope calls for the same scope are serialized.
type Store interface {
	InScope(ctx context.Context, scope liftlogs.Scope, fn func(tx ScopeTx) error) error
	// Records returns the scope's live records.
	Records(ctx context.Context, scope liftlogs.Scope) ([]PersonalRecord, error)
	DeletedRecords(ctx context.Context, scope liftlogs.Scope) ([]PersonalRecord, error)
}
