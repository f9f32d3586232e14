// Package modality describes what an exercise's modality supports when it
// comes to strength records: free weights and loaded bodyweight movements
// can estimate a one rep max, bands, cardio and timed holds cannot.
package modality

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymprs/internal/gymstats/onerm"
)

var (
	ErrOneRepMaxUnsupported = errors.New("one rep max not supported for modality")
	ErrUnknownKind          = errors.New("unknown exercise modality")
)

type Kind string

const (
	KindFreeWeight Kind = "free_weight"
	KindBodyweight Kind = "bodyweight"
	KindBanded     Kind = "banded"
	KindCardio     Kind = "cardio"
	KindTimedHold  Kind = "timed_hold"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindFreeWeight,
		KindBodyweight,
		KindBanded,
		KindCardio,
		KindTimedHold:
		return true
	default:
		return false
	}
}

// ParseKind maps the exercise_type.modality column to a Kind.
// Empty values default to free weight, which is what the catalog was built around.
func ParseKind(value string) (Kind, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return KindFreeWeight, nil
	}
	kind := Kind(strings.ReplaceAll(value, "-", "_"))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, value)
	}
	return kind, nil
}

// Capability exposes the record-related abilities of one exercise modality.
type Capability interface {
	Kind() Kind
	SupportsOneRepMax() bool
	EstimateOneRepMax(weight float64, reps int) (float64, error)
	WeightForReps(oneRM float64, reps int) (float64, error)
}

// For returns the capability of the given kind, estimating with formula.
func For(kind Kind, formula onerm.Formula) (Capability, error) {
	if formula == nil {
		formula = onerm.Epley{}
	}
	switch kind {
	case KindFreeWeight:
		return FreeWeight{formula: formula}, nil
	case KindBodyweight:
		return Bodyweight{formula: formula}, nil
	case KindBanded:
		return Banded{}, nil
	case KindCardio:
		return Cardio{}, nil
	case KindTimedHold:
		return TimedHold{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

type FreeWeight struct {
	formula onerm.Formula
}

func (FreeWeight) Kind() Kind {
	return KindFreeWeight
}

func (FreeWeight) SupportsOneRepMax() bool {
	return true
}

func (c FreeWeight) EstimateOneRepMax(weight float64, reps int) (float64, error) {
	return c.formula.Estimate(weight, reps)
}

func (c FreeWeight) WeightForReps(oneRM float64, reps int) (float64, error) {
	return c.formula.WeightForReps(oneRM, reps)
}

// Bodyweight sets carry the added load as weight (weighted dips, pull-ups).
// Sets without added load cannot be ranked by estimated max.
type Bodyweight struct {
	formula onerm.Formula
}

func (Bodyweight) Kind() Kind {
	return KindBodyweight
}

func (Bodyweight) SupportsOneRepMax() bool {
	return true
}

func (c Bodyweight) EstimateOneRepMax(weight float64, reps int) (float64, error) {
	if weight <= 0 {
		return 0, fmt.Errorf("%w: bodyweight set without added load", ErrOneRepMaxUnsupported)
	}
	return c.formula.Estimate(weight, reps)
}

func (c Bodyweight) WeightForReps(oneRM float64, reps int) (float64, error) {
	return c.formula.WeightForReps(oneRM, reps)
}

type unsupported struct{}

func (unsupported) SupportsOneRepMax() bool {
	return false
}

func (unsupported) EstimateOneRepMax(float64, int) (float64, error) {
	return 0, ErrOneRepMaxUnsupported
}

func (unsupported) WeightForReps(float64, int) (float64, error) {
	return 0, ErrOneRepMaxUnsupported
}

type Banded struct {
	unsupported
}

func (Banded) Kind() Kind {
	return KindBanded
}

type Cardio struct {
	unsupported
}

func (Cardio) Kind() Kind {
	return KindCardio
}

type TimedHold struct {
	unsupported
}

func (TimedHold) Kind() Kind {
	return KindTimedHold
}
