package records_test

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/modality"
	"github.com/2beens/gymprs/internal/gymstats/records"

	"github.com/stretchr/testify/require"
)

const (
	testUserID     = 7
	testExerciseID = "bench-press"
)

var (
	testScope = liftlogs.Scope{UserID: testUserID, ExerciseID: testExerciseID}
	testDay   = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
)

func day(n int) time.Time {
	return testDay.Add(time.Duration(n) * 24 * time.Hour)
}

func newLog(loggedAt time.Time, sets ...liftlogs.Set) liftlogs.LiftLog {
	return liftlogs.LiftLog{
		UserID:     testUserID,
		ExerciseID: testExerciseID,
		LoggedAt:   loggedAt,
		Sets:       sets,
	}
}

func set(weight float64, reps int) liftlogs.Set {
	return liftlogs.Set{Weight: weight, Reps: reps}
}

func sets(n int, weight float64, reps int) []liftlogs.Set {
	s := make([]liftlogs.Set, n)
	for i := range s {
		s[i] = set(weight, reps)
	}
	return s
}

func freeWeightProvider() *modality.Static {
	return modality.NewStatic(nil)
}

func mustAdd(t *testing.T, store *records.MemoryStore, log liftlogs.LiftLog) liftlogs.LiftLog {
	t.Helper()
	saved, err := store.Add(context.Background(), log)
	require.NoError(t, err)
	return *saved
}

// logAndDetect stores the log and runs the incremental path on it.
func logAndDetect(t *testing.T, store *records.MemoryStore, detector *records.Detector, log liftlogs.LiftLog) ([]records.PersonalRecord, liftlogs.LiftLog) {
	t.Helper()
	saved := mustAdd(t, store, log)
	created, err := detector.DetectAndRecord(context.Background(), saved)
	require.NoError(t, err)
	return created, saved
}

func mustRecords(t *testing.T, store *records.MemoryStore) []records.PersonalRecord {
	t.Helper()
	recs, err := store.Records(context.Background(), testScope)
	require.NoError(t, err)
	return recs
}

func mustGet(t *testing.T, store *records.MemoryStore, id int) liftlogs.LiftLog {
	t.Helper()
	l, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	return *l
}

// recordTuple is a record without its surrogate identities.
type recordTuple struct {
	Type          records.Type
	RepCount      int
	LiftLogID     int
	Weight        float64
	Value         float64
	AchievedAt    time.Time
	PreviousValue float64
	HasPrevious   bool
}

func tuples(recs []records.PersonalRecord) []recordTuple {
	out := make([]recordTuple, 0, len(recs))
	for _, r := range recs {
		tp := recordTuple{
			Type:       r.Type,
			LiftLogID:  r.LiftLogID,
			Weight:     r.Weight,
			Value:      r.Value,
			AchievedAt: r.AchievedAt,
		}
		if r.RepCount != nil {
			tp.RepCount = *r.RepCount
		}
		if r.PreviousValue != nil {
			tp.PreviousValue = *r.PreviousValue
			tp.HasPrevious = true
		}
		out = append(out, tp)
	}
	return out
}
