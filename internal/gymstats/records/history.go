package records

import (
	"sort"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/modality"

	log "github.com/sirupsen/logrus"
)

// history is the best-so-far state of a scope, built from the logs that
// came before the one being evaluated.
type history struct {
	entries         int
	bestOneRM       float64
	maxWeightByReps map[int]float64
}

func newHistory() *history {
	return &history{
		maxWeightByReps: make(map[int]float64),
	}
}

type candidate struct {
	key    ChainKey
	weight float64
	value  float64
}

// estimatedSet is a set that passed validation and estimation.
type estimatedSet struct {
	liftlogs.Set
	oneRM float64
}

func estimateSets(capability modality.Capability, entry liftlogs.LiftLog) []estimatedSet {
	estimated := make([]estimatedSet, 0, len(entry.Sets))
	for i, s := range entry.Sets {
		if s.Weight <= 0 || s.Reps <= 0 {
			continue
		}
		oneRM, err := capability.EstimateOneRepMax(s.Weight, s.Reps)
		if err != nil {
			log.Debugf("lift log [%d] set [%d]: skipping, estimate one rep max: %s", entry.ID, i, err)
			continue
		}
		estimated = append(estimated, estimatedSet{Set: s, oneRM: oneRM})
	}
	return estimated
}

// observe folds the entry into the accumulated state.
func (h *history) observe(capability modality.Capability, entry liftlogs.LiftLog) {
	h.entries++
	for _, s := range estimateSets(capability, entry) {
		if s.oneRM > h.bestOneRM {
			h.bestOneRM = s.oneRM
		}
		if s.Reps > MaxRepSpecificReps {
			continue
		}
		if prevMax, ok := h.maxWeightByReps[s.Reps]; !ok || s.Weight > prevMax {
			h.maxWeightByReps[s.Reps] = s.Weight
		}
	}
}

// evaluate returns the records the entry sets against the accumulated state,
// rep specific ones first (ascending rep count), then the one rep max one.
func (h *history) evaluate(capability modality.Capability, entry liftlogs.LiftLog) []candidate {
	sets := estimateSets(capability, entry)
	if len(sets) == 0 {
		return nil
	}

	best := sets[0]
	heaviestByReps := make(map[int]float64)
	for _, s := range sets {
		if s.oneRM > best.oneRM {
			best = s
		}
		if s.Reps <= MaxRepSpecificReps && s.Weight > heaviestByReps[s.Reps] {
			heaviestByReps[s.Reps] = s.Weight
		}
	}

	oneRMCandidate := candidate{
		key:    ChainKey{Type: TypeOneRM},
		weight: best.Weight,
		value:  best.oneRM,
	}

	if h.entries == 0 {
		if best.oneRM > 0 {
			return []candidate{oneRMCandidate}
		}
		return nil
	}

	reps := make([]int, 0, len(heaviestByReps))
	for r := range heaviestByReps {
		reps = append(reps, r)
	}
	sort.Ints(reps)

	var candidates []candidate
	for _, r := range reps {
		prevMax, ok := h.maxWeightByReps[r]
		if !ok {
			// nothing logged at this rep count before, so there is no record to beat
			continue
		}
		if heaviestByReps[r]-prevMax > Tolerance {
			candidates = append(candidates, candidate{
				key:    ChainKey{Type: TypeRepSpecific, RepCount: r},
				weight: heaviestByReps[r],
				value:  heaviestByReps[r],
			})
		}
	}

	if best.oneRM-h.bestOneRM > Tolerance {
		candidates = append(candidates, oneRMCandidate)
	}

	return candidates
}

func (c candidate) record(entry liftlogs.LiftLog, previous *PersonalRecord) PersonalRecord {
	rec := PersonalRecord{
		UserID:     entry.UserID,
		ExerciseID: entry.ExerciseID,
		LiftLogID:  entry.ID,
		Type:       c.key.Type,
		RepCount:   c.key.repCountPtr(),
		Weight:     c.weight,
		Value:      c.value,
		AchievedAt: entry.LoggedAt,
	}
	if previous != nil {
		prevID := previous.ID
		prevValue := previous.Value
		rec.PreviousPRID = &prevID
		rec.PreviousValue = &prevValue
	}
	return rec
}
