// Package onerm estimates one-rep-max (1RM) values from sub-maximal sets,
// and maps an estimated max back to a working weight for a given rep count.
package onerm

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidInput   = errors.New("invalid weight or reps")
	ErrUnknownFormula = errors.New("unknown one rep max formula")
)

const (
	FormulaEpley   = "epley"
	FormulaBrzycki = "brzycki"
	FormulaAverage = "average"

	// brzyckiMaxReps is the last rep count for which 37 - reps stays positive.
	brzyckiMaxReps = 36
)

// Formula estimates a maximal single rep from (weight, reps), and inverts it.
// Implementations must be monotonically increasing in both weight and reps.
type Formula interface {
	Name() string
	Estimate(weight float64, reps int) (float64, error)
	WeightForReps(oneRM float64, reps int) (float64, error)
}

// FormulaByName resolves the configured formula; empty name means Epley.
func FormulaByName(name string) (Formula, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormulaEpley:
		return Epley{}, nil
	case FormulaBrzycki:
		return Brzycki{}, nil
	case FormulaAverage:
		return Average{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormula, name)
	}
}

// Epley: 1RM = w * (1 + r/30)
type Epley struct{}

func (Epley) Name() string {
	return FormulaEpley
}

func (Epley) Estimate(weight float64, reps int) (float64, error) {
	if err := validate(weight, reps); err != nil {
		return 0, err
	}
	if reps == 1 {
		return weight, nil
	}
	return weight * (1 + float64(reps)/30), nil
}

func (Epley) WeightForReps(oneRM float64, reps int) (float64, error) {
	if err := validate(oneRM, reps); err != nil {
		return 0, err
	}
	if reps == 1 {
		return oneRM, nil
	}
	return oneRM / (1 + float64(reps)/30), nil
}

// Brzycki: 1RM = w * 36 / (37 - r), defined up to 36 reps.
type Brzycki struct{}

func (Brzycki) Name() string {
	return FormulaBrzycki
}

func (Brzycki) Estimate(weight float64, reps int) (float64, error) {
	if err := validate(weight, reps); err != nil {
		return 0, err
	}
	if reps > brzyckiMaxReps {
		return 0, fmt.Errorf("%w: brzycki supports up to %d reps, got %d", ErrInvalidInput, brzyckiMaxReps, reps)
	}
	if reps == 1 {
		return weight, nil
	}
	return weight * 36 / float64(37-reps), nil
}

func (Brzycki) WeightForReps(oneRM float64, reps int) (float64, error) {
	if err := validate(oneRM, reps); err != nil {
		return 0, err
	}
	if reps > brzyckiMaxReps {
		return 0, fmt.Errorf("%w: brzycki supports up to %d reps, got %d", ErrInvalidInput, brzyckiMaxReps, reps)
	}
	if reps == 1 {
		return oneRM, nil
	}
	return oneRM * float64(37-reps) / 36, nil
}

// Average takes the mean of Epley and Brzycki.
type Average struct{}

func (Average) Name() string {
	return FormulaAverage
}

func (Average) Estimate(weight float64, reps int) (float64, error) {
	e, err := Epley{}.Estimate(weight, reps)
	if err != nil {
		return 0, err
	}
	b, err := Brzycki{}.Estimate(weight, reps)
	if err != nil {
		return 0, err
	}
	return (e + b) / 2, nil
}

func (Average) WeightForReps(oneRM float64, reps int) (float64, error) {
	e, err := Epley{}.WeightForReps(oneRM, reps)
	if err != nil {
		return 0, err
	}
	b, err := Brzycki{}.WeightForReps(oneRM, reps)
	if err != nil {
		return 0, err
	}
	return (e + b) / 2, nil
}

// RoundTo rounds weight to the nearest multiple of increment (e.g. 5 for plates).
func RoundTo(weight, increment float64) float64 {
	if increment <= 0 {
		return weight
	}
	return math.Round(weight/increment) * increment
}

func validate(weight float64, reps int) error {
	if weight <= 0 || reps < 1 {
		return fmt.Errorf("%w: weight [%.2f], reps [%d]", ErrInvalidInput, weight, reps)
	}
	return nil
}
