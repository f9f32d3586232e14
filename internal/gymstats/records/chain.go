package records

import (
	"errors"
	"fmt"
	"sort"
)

var ErrChainBroken = errors.New("personal record chain broken")

// Chains groups records by chain key, each chain ordered by achieved at
// (ties broken by id, which follows insertion order).
func Chains(records []PersonalRecord) map[ChainKey][]PersonalRecord {
	chains := make(map[ChainKey][]PersonalRecord)
	for _, r := range records {
		chains[r.Key()] = append(chains[r.Key()], r)
	}
	for _, chain := range chains {
		sort.SliceStable(chain, func(i, j int) bool {
			if !chain[i].AchievedAt.Equal(chain[j].AchievedAt) {
				return chain[i].AchievedAt.Before(chain[j].AchievedAt)
			}
			return chain[i].ID < chain[j].ID
		})
	}
	return chains
}

// Current returns the head of every chain, i.e. the records nothing has superseded yet.
func Current(records []PersonalRecord) []PersonalRecord {
	chains := Chains(records)
	current := make([]PersonalRecord, 0, len(chains))
	for _, key := range sortedKeys(chains) {
		chain := chains[key]
		current = append(current, chain[len(chain)-1])
	}
	return current
}

// VerifyChain checks that, per chain key, every record links to the one
// right before it in achieved-at order, with the matching previous value,
// and that only the oldest record has no predecessor.
func VerifyChain(records []PersonalRecord) error {
	chains := Chains(records)
	for _, key := range sortedKeys(chains) {
		for i, rec := range chains[key] {
			if !rec.Type.IsValid() {
				return fmt.Errorf("%w: record [%d] has unknown type [%s]", ErrChainBroken, rec.ID, rec.Type)
			}
			if (rec.Type == TypeRepSpecific) != (rec.RepCount != nil) {
				return fmt.Errorf("%w: record [%d] of type [%s] has inconsistent rep count", ErrChainBroken, rec.ID, rec.Type)
			}

			if i == 0 {
				if rec.PreviousPRID != nil {
					return fmt.Errorf("%w: [%s] first record [%d] links to [%d]", ErrChainBroken, key, rec.ID, *rec.PreviousPRID)
				}
				continue
			}

			prev := chains[key][i-1]
			if rec.PreviousPRID == nil {
				return fmt.Errorf("%w: [%s] records [%d] and [%d] are both current", ErrChainBroken, key, prev.ID, rec.ID)
			}
			if *rec.PreviousPRID != prev.ID {
				return fmt.Errorf("%w: [%s] record [%d] links to [%d], expected [%d]", ErrChainBroken, key, rec.ID, *rec.PreviousPRID, prev.ID)
			}
			if rec.PreviousValue == nil || *rec.PreviousValue != prev.Value {
				return fmt.Errorf("%w: [%s] record [%d] previous value does not match record [%d]", ErrChainBroken, key, rec.ID, prev.ID)
			}
		}
	}
	return nil
}

func sortedKeys(chains map[ChainKey][]PersonalRecord) []ChainKey {
	keys := make([]ChainKey, 0, len(chains))
	for k := range chains {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].less(keys[j])
	})
	return keys
}
