package liftlogs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrLogNotFound     = errors.New("lift log not found")
	ErrUnknownExercise = errors.New("unknown exercise type")
	ErrInvalidLog      = errors.New("invalid lift log")
	ErrInvalidScope    = errors.New("invalid scope")
)

// Scope is a (user, exercise) pair. Record chains and suggestions are
// always computed for a single scope.
type Scope struct {
	UserID     int    `json:"userId"`
	ExerciseID string `json:"exerciseId"`
}

func (s Scope) String() string {
	return fmt.Sprintf("%d:%s", s.UserID, s.ExerciseID)
}

// ParseScope is the inverse of Scope.String.
func ParseScope(value string) (Scope, error) {
	userPart, exercisePart, found := strings.Cut(value, ":")
	if !found || exercisePart == "" {
		return Scope{}, fmt.Errorf("%w: %q", ErrInvalidScope, value)
	}
	userID, err := strconv.Atoi(userPart)
	if err != nil {
		return Scope{}, fmt.Errorf("%w: user id %q", ErrInvalidScope, userPart)
	}
	return Scope{UserID: userID, ExerciseID: exercisePart}, nil
}

// Set is a single performance inside a lift log. Depending on the modality
// only some of the fields are meaningful (band color for banded exercises,
// duration for timed holds and cardio).
type Set struct {
	Weight          float64 `json:"weight"`
	Reps            int     `json:"reps"`
	Notes           string  `json:"notes,omitempty"`
	BandColor       string  `json:"bandColor,omitempty"`
	DurationSeconds int     `json:"durationSeconds,omitempty"`
}

// LiftLog is one completed workout entry for an exercise.
type LiftLog struct {
	ID         int               `json:"id"`
	UserID     int               `json:"userId"`
	ExerciseID string            `json:"exerciseId"`
	LoggedAt   time.Time         `json:"loggedAt"`
	Sets       []Set             `json:"sets"`
	IsPR       bool              `json:"isPr"`
	PRCount    int               `json:"prCount"`
	Metadata   map[string]string `json:"metadata"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func (l LiftLog) Scope() Scope {
	return Scope{UserID: l.UserID, ExerciseID: l.ExerciseID}
}

// Position is where a log sits in its scope's replay order: by logged at,
// then by id for logs of the same second.
type Position struct {
	LoggedAt time.Time
	ID       int
}

func (l LiftLog) Position() Position {
	return Position{LoggedAt: l.LoggedAt, ID: l.ID}
}

// Before reports whether p is replayed before other.
func (p Position) Before(other Position) bool {
	if !p.LoggedAt.Equal(other.LoggedAt) {
		return p.LoggedAt.Before(other.LoggedAt)
	}
	return p.ID < other.ID
}

// Validate checks the log before it is stored. LoggedAt is truncated to
// seconds, since ordering within a scope is done at second precision.
func (l *LiftLog) Validate() error {
	if l.UserID <= 0 {
		return fmt.Errorf("%w: user id missing", ErrInvalidLog)
	}
	if l.ExerciseID == "" {
		return fmt.Errorf("%w: exercise id missing", ErrInvalidLog)
	}
	if l.LoggedAt.IsZero() {
		return fmt.Errorf("%w: logged at missing", ErrInvalidLog)
	}
	if len(l.Sets) == 0 {
		return fmt.Errorf("%w: no sets", ErrInvalidLog)
	}
	for i, s := range l.Sets {
		if s.Weight < 0 || s.Reps < 0 || s.DurationSeconds < 0 {
			return fmt.Errorf("%w: set %d has negative values", ErrInvalidLog, i)
		}
	}
	l.LoggedAt = l.LoggedAt.Truncate(time.Second)
	if l.Metadata == nil {
		l.Metadata = map[string]string{}
	}
	return nil
}
