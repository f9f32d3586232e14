package records

import (
	"fmt"
	"time"
)

const (
	// Tolerance is the margin (in weight units) a value has to beat the
	// previous best by to count as a new record. Exactly 0.1 more is not enough.
	Tolerance = 0.1
	// MaxRepSpecificReps is the highest rep count tracked with its own record chain.
	MaxRepSpecificReps = 5
)

// Type can be one of:
//   - one_rm (ranked by estimated one rep max)
//   - rep_specific (ranked by weight, for an exact rep count up to 5)
//   - volume
//   - hypertrophy
//
// Volume and hypertrophy records are accepted by the ledger but no detector
// produces them yet.
type Type string

const (
	TypeOneRM       Type = "one_rm"
	TypeRepSpecific Type = "rep_specific"
	TypeVolume      Type = "volume"
	TypeHypertrophy Type = "hypertrophy"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeOneRM,
		TypeRepSpecific,
		TypeVolume,
		TypeHypertrophy:
		return true
	default:
		return false
	}
}

// PersonalRecord is an immutable snapshot of the best known performance of
// one kind, as of the moment it was achieved. PreviousPRID points to the
// record it superseded, nil for the first record of its chain. A rebuild
// soft-deletes the records it replaces: DeletedAt is set and they are no
// longer part of any chain.
type PersonalRecord struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	ExerciseID    string    `json:"exerciseId"`
	LiftLogID     int       `json:"liftLogId"`
	Type          Type      `json:"type"`
	RepCount      *int      `json:"repCount,omitempty"`
	Weight        float64   `json:"weight"`
	Value         float64   `json:"value"`
	AchievedAt    time.Time `json:"achievedAt"`
	PreviousPRID  *int      `json:"previousPrId,omitempty"`
	PreviousValue *float64  `json:"previousValue,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
}

func (r PersonalRecord) Key() ChainKey {
	key := ChainKey{Type: r.Type}
	if r.RepCount != nil {
		key.RepCount = *r.RepCount
	}
	return key
}

// ChainKey identifies one record chain inside a scope. RepCount is only set
// for rep specific records.
type ChainKey struct {
	Type     Type
	RepCount int
}

func (k ChainKey) String() string {
	if k.Type == TypeRepSpecific {
		return fmt.Sprintf("%s/%d", k.Type, k.RepCount)
	}
	return k.Type.String()
}

func (k ChainKey) repCountPtr() *int {
	if k.Type != TypeRepSpecific {
		return nil
	}
	repCount := k.RepCount
	return &repCount
}

func (k ChainKey) less(other ChainKey) bool {
	if k.Type != other.Type {
		return k.Type < other.Type
	}
	return k.RepCount < other.RepCount
}
