package exercises

import (
	"time"

	"github.com/2beens/gymprs/internal/gymstats/modality"
)

// ExerciseType is a catalog entry. Modality decides which records and
// suggestions make sense for it, Category selects the progression strategy.
type ExerciseType struct {
	ID          string        `json:"id"`
	MuscleGroup string        `json:"muscleGroup"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Modality    modality.Kind `json:"modality"`
	Category    string        `json:"category"`
	CreatedAt   time.Time     `json:"createdAt"`
}

var MuscleGroup = struct {
	Biceps    string
	Triceps   string
	Back      string
	Legs      string
	Chest     string
	Shoulders string
	Core      string
	Other     string
}{
	Biceps:    "biceps",
	Triceps:   "triceps",
	Back:      "back",
	Legs:      "legs",
	Chest:     "chest",
	Shoulders: "shoulders",
	Core:      "core",
	Other:     "other",
}

var MuscleGroups = []string{
	MuscleGroup.Biceps,
	MuscleGroup.Triceps,
	MuscleGroup.Back,
	MuscleGroup.Legs,
	MuscleGroup.Chest,
	MuscleGroup.Shoulders,
	MuscleGroup.Core,
	MuscleGroup.Other,
}
