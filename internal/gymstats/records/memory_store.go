package records

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
)

// MemoryStore is an in-memory Store that also stands in for the lift log
// repo. Used in tests and for dry runs; InScope snapshots the data and
// restores it when fn fails.
type MemoryStore struct {
	mu           sync.Mutex
	nextLogID    int
	nextRecordID int
	logs         map[int]liftlogs.LiftLog
	records      map[int]PersonalRecord

	// FailOn, when set, is consulted before every ScopeTx write with the
	// operation name ("add_record", "delete_records", "set_log_flags",
	// "reset_log_flags"); a non nil error fails that operation.
	FailOn func(op string) error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		logs:    make(map[int]liftlogs.LiftLog),
		records: make(map[int]PersonalRecord),
	}
}

func (s *MemoryStore) InScope(ctx context.Context, scope liftlogs.Scope, fn func(tx ScopeTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logsSnapshot := make(map[int]liftlogs.LiftLog, len(s.logs))
	for id, l := range s.logs {
		logsSnapshot[id] = l
	}
	recordsSnapshot := make(map[int]PersonalRecord, len(s.records))
	for id, r := range s.records {
		recordsSnapshot[id] = r
	}
	nextRecordID := s.nextRecordID

	if err := fn(&memoryScopeTx{store: s, scope: scope}); err != nil {
		s.logs = logsSnapshot
		s.records = recordsSnapshot
		s.nextRecordID = nextRecordID
		return err
	}
	return nil
}

func (s *MemoryStore) Records(_ context.Context, scope liftlogs.Scope) ([]PersonalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scopeRecords(scope), nil
}

func (s *MemoryStore) DeletedRecords(_ context.Context, scope liftlogs.Scope) ([]PersonalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := make([]PersonalRecord, 0)
	for _, r := range s.records {
		if r.DeletedAt != nil && r.UserID == scope.UserID && r.ExerciseID == scope.ExerciseID {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].ID < recs[j].ID
	})
	return recs, nil
}

func (s *MemoryStore) Add(_ context.Context, log liftlogs.LiftLog) (*liftlogs.LiftLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextLogID++
	log.ID = s.nextLogID
	log.IsPR = false
	log.PRCount = 0
	log.Sets = append([]liftlogs.Set(nil), log.Sets...)
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	s.logs[log.ID] = log
	return &log, nil
}

func (s *MemoryStore) Update(_ context.Context, log *liftlogs.LiftLog) (liftlogs.Scope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.logs[log.ID]
	if !ok {
		return liftlogs.Scope{}, liftlogs.ErrLogNotFound
	}
	updated := *log
	updated.Sets = append([]liftlogs.Set(nil), log.Sets...)
	updated.IsPR = existing.IsPR
	updated.PRCount = existing.PRCount
	updated.CreatedAt = existing.CreatedAt
	s.logs[log.ID] = updated

	log.IsPR = existing.IsPR
	log.PRCount = existing.PRCount
	log.CreatedAt = existing.CreatedAt
	return existing.Scope(), nil
}

// Delete removes the log together with the records it produced.
func (s *MemoryStore) Delete(_ context.Context, id int) (liftlogs.Scope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.logs[id]
	if !ok {
		return liftlogs.Scope{}, liftlogs.ErrLogNotFound
	}
	delete(s.logs, id)

	deleted := make(map[int]bool)
	for recID, r := range s.records {
		if r.LiftLogID == id {
			deleted[recID] = true
			delete(s.records, recID)
		}
	}
	// same as ON DELETE SET NULL on previous_pr_id
	for recID, r := range s.records {
		if r.PreviousPRID != nil && deleted[*r.PreviousPRID] {
			r.PreviousPRID = nil
			s.records[recID] = r
		}
	}

	return existing.Scope(), nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (*liftlogs.LiftLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.logs[id]
	if !ok {
		return nil, liftlogs.ErrLogNotFound
	}
	return &l, nil
}

func (s *MemoryStore) List(_ context.Context, params liftlogs.ListParams) ([]liftlogs.LiftLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := make([]liftlogs.LiftLog, 0)
	for _, l := range s.logs {
		if l.UserID != params.UserID {
			continue
		}
		if params.ExerciseID != "" && l.ExerciseID != params.ExerciseID {
			continue
		}
		if params.From != nil && l.LoggedAt.Before(*params.From) {
			continue
		}
		if params.To != nil && l.LoggedAt.After(*params.To) {
			continue
		}
		logs = append(logs, l)
	}
	sortLogs(logs)
	// newest first
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}

	size := params.Size
	if size <= 0 {
		size = 50
	}
	start := params.Page * size
	if start >= len(logs) {
		return []liftlogs.LiftLog{}, nil
	}
	end := start + size
	if end > len(logs) {
		end = len(logs)
	}
	return logs[start:end], nil
}

func (s *MemoryStore) Latest(_ context.Context, scope liftlogs.Scope, asOf *time.Time) (*liftlogs.LiftLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *liftlogs.LiftLog
	for _, l := range s.scopeLogs(scope, nil) {
		if asOf != nil && l.LoggedAt.After(*asOf) {
			continue
		}
		l := l
		latest = &l
	}
	return latest, nil
}

func (s *MemoryStore) HasLogsAfter(_ context.Context, scope liftlogs.Scope, t time.Time, excludeID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	after := liftlogs.Position{LoggedAt: t, ID: excludeID}
	for _, l := range s.scopeLogs(scope, nil) {
		if l.ID != excludeID && after.Before(l.Position()) {
			return true, nil
		}
	}
	return false, nil
}

// scopeLogs expects s.mu to be held.
func (s *MemoryStore) scopeLogs(scope liftlogs.Scope, before *liftlogs.Position) []liftlogs.LiftLog {
	logs := make([]liftlogs.LiftLog, 0)
	for _, l := range s.logs {
		if l.Scope() != scope {
			continue
		}
		if before != nil && !l.Position().Before(*before) {
			continue
		}
		logs = append(logs, l)
	}
	sortLogs(logs)
	return logs
}

// scopeRecords returns the live records of the scope; expects s.mu to be held.
func (s *MemoryStore) scopeRecords(scope liftlogs.Scope) []PersonalRecord {
	recs := make([]PersonalRecord, 0)
	for _, r := range s.records {
		if r.DeletedAt == nil && r.UserID == scope.UserID && r.ExerciseID == scope.ExerciseID {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].AchievedAt.Equal(recs[j].AchievedAt) {
			return recs[i].AchievedAt.Before(recs[j].AchievedAt)
		}
		return recs[i].ID < recs[j].ID
	})
	return recs
}

func sortLogs(logs []liftlogs.LiftLog) {
	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].LoggedAt.Equal(logs[j].LoggedAt) {
			return logs[i].LoggedAt.Before(logs[j].LoggedAt)
		}
		return logs[i].ID < logs[j].ID
	})
}

type memoryScopeTx struct {
	store *MemoryStore
	scope liftlogs.Scope
}

func (t *memoryScopeTx) fail(op string) error {
	if t.store.FailOn == nil {
		return nil
	}
	return t.store.FailOn(op)
}

func (t *memoryScopeTx) ListLogs(_ context.Context, before *liftlogs.Position) ([]liftlogs.LiftLog, error) {
	return t.store.scopeLogs(t.scope, before), nil
}

func (t *memoryScopeTx) ListRecords(_ context.Context) ([]PersonalRecord, error) {
	return t.store.scopeRecords(t.scope), nil
}

func (t *memoryScopeTx) LatestRecord(_ context.Context, key ChainKey) (*PersonalRecord, error) {
	var latest *PersonalRecord
	for _, r := range t.store.scopeRecords(t.scope) {
		if r.Key() == key {
			r := r
			latest = &r
		}
	}
	return latest, nil
}

func (t *memoryScopeTx) AddRecord(_ context.Context, record PersonalRecord) (*PersonalRecord, error) {
	if err := t.fail("add_record"); err != nil {
		return nil, err
	}
	t.store.nextRecordID++
	record.ID = t.store.nextRecordID
	record.CreatedAt = time.Now()
	t.store.records[record.ID] = record
	return &record, nil
}

func (t *memoryScopeTx) DeleteRecords(_ context.Context) (int, error) {
	if err := t.fail("delete_records"); err != nil {
		return 0, err
	}
	now := time.Now()
	deleted := 0
	for id, r := range t.store.records {
		if r.DeletedAt == nil && r.UserID == t.scope.UserID && r.ExerciseID == t.scope.ExerciseID {
			r.DeletedAt = &now
			t.store.records[id] = r
			deleted++
		}
	}
	return deleted, nil
}

func (t *memoryScopeTx) SetLogFlags(_ context.Context, logID int, isPR bool, prCount int) error {
	if err := t.fail("set_log_flags"); err != nil {
		return err
	}
	l, ok := t.store.logs[logID]
	if !ok {
		return liftlogs.ErrLogNotFound
	}
	l.IsPR = isPR
	l.PRCount = prCount
	t.store.logs[logID] = l
	return nil
}

func (t *memoryScopeTx) ResetLogFlags(_ context.Context) error {
	if err := t.fail("reset_log_flags"); err != nil {
		return err
	}
	for id, l := range t.store.logs {
		if l.Scope() == t.scope {
			l.IsPR = false
			l.PRCount = 0
			t.store.logs[id] = l
		}
	}
	return nil
}
