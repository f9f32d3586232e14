package progression

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/modality"
	"github.com/2beens/gymprs/internal/gymstats/onerm"

	log "github.com/sirupsen/logrus"
)

const (
	StrategyLinear = "linear"
	StrategyDouble = "double"

	DefaultLinearTargetReps = 5
	DefaultIncrement        = 5.0
	DefaultDoubleMinReps    = 8
	DefaultDoubleMaxReps    = 12
)

var ErrUnknownStrategy = errors.New("unknown progression strategy")

// Strategy turns the last logged entry of a scope into the next session's target.
// Implementations only look at that one entry.
type Strategy interface {
	Name() string
	Suggest(capability modality.Capability, last liftlogs.LiftLog) Suggestion
}

// Linear derives the next working weight from the estimated max of the last
// entry's best set.
type Linear struct {
	TargetReps int
	Increment  float64
}

func NewLinear() Linear {
	return Linear{
		TargetReps: DefaultLinearTargetReps,
		Increment:  DefaultIncrement,
	}
}

func (Linear) Name() string {
	return StrategyLinear
}

func (s Linear) Suggest(capability modality.Capability, last liftlogs.LiftLog) Suggestion {
	suggestion := newSuggestion(s.Name(), last)

	top, ok := topSet(last.Sets)
	if !ok {
		suggestion.WeightUnavailable = true
		return suggestion
	}
	suggestion.LastWeight = top.Weight
	suggestion.LastReps = top.Reps
	suggestion.SuggestedReps = top.Reps

	if !capability.SupportsOneRepMax() {
		suggestion.WeightUnavailable = true
		return suggestion
	}

	best, oneRM, err := bestEstimatedSet(capability, last.Sets)
	if err != nil {
		log.Debugf("linear progression: lift log [%d]: %s", last.ID, err)
		suggestion.WeightUnavailable = true
		return suggestion
	}
	suggestion.LastWeight = best.Weight
	suggestion.LastReps = best.Reps
	suggestion.SuggestedReps = best.Reps

	target, err := capability.WeightForReps(oneRM, s.TargetReps)
	if err != nil {
		log.Debugf("linear progression: lift log [%d]: weight for [%d] reps: %s", last.ID, s.TargetReps, err)
		suggestion.WeightUnavailable = true
		return suggestion
	}
	suggestion.SuggestedWeight = onerm.RoundTo(target, s.Increment)

	return suggestion
}

// Double keeps the weight and adds a rep until the top of the rep band is
// reached, then adds weight and starts again from the bottom of the band.
type Double struct {
	MinReps   int
	MaxReps   int
	Increment float64
}

func NewDouble() Double {
	return Double{
		MinReps:   DefaultDoubleMinReps,
		MaxReps:   DefaultDoubleMaxReps,
		Increment: DefaultIncrement,
	}
}

func (Double) Name() string {
	return StrategyDouble
}

func (s Double) Suggest(_ modality.Capability, last liftlogs.LiftLog) Suggestion {
	suggestion := newSuggestion(s.Name(), last)

	top, ok := topSet(last.Sets)
	if !ok {
		suggestion.WeightUnavailable = true
		return suggestion
	}
	suggestion.LastWeight = top.Weight
	suggestion.LastReps = top.Reps

	if top.Reps < s.MaxReps {
		suggestion.SuggestedWeight = top.Weight
		suggestion.SuggestedReps = top.Reps + 1
	} else {
		suggestion.SuggestedWeight = top.Weight + s.Increment
		suggestion.SuggestedReps = s.MinReps
	}

	return suggestion
}

// NewStrategy builds a strategy by its config name, using the given
// parameters for the matching type.
func NewStrategy(name string, linear Linear, double Double) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyLinear:
		return linear, nil
	case StrategyDouble:
		return double, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}
}

// topSet is the heaviest set, the one with more reps on equal weight.
func topSet(sets []liftlogs.Set) (liftlogs.Set, bool) {
	if len(sets) == 0 {
		return liftlogs.Set{}, false
	}
	top := sets[0]
	for _, s := range sets[1:] {
		if s.Weight > top.Weight || (s.Weight == top.Weight && s.Reps > top.Reps) {
			top = s
		}
	}
	return top, true
}

func bestEstimatedSet(capability modality.Capability, sets []liftlogs.Set) (liftlogs.Set, float64, error) {
	var (
		best    liftlogs.Set
		bestMax float64
		lastErr error
		found   bool
	)
	for _, s := range sets {
		if s.Weight <= 0 || s.Reps <= 0 {
			continue
		}
		oneRM, err := capability.EstimateOneRepMax(s.Weight, s.Reps)
		if err != nil {
			lastErr = err
			continue
		}
		if !found || oneRM > bestMax {
			best, bestMax, found = s, oneRM, true
		}
	}
	if !found {
		if lastErr == nil {
			lastErr = fmt.Errorf("%w: no set with weight and reps", onerm.ErrInvalidInput)
		}
		return liftlogs.Set{}, 0, lastErr
	}
	return best, bestMax, nil
}
