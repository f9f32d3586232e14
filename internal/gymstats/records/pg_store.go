package records

import (
	"context"
	"fmt"

	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/telemetry/tracing"
	"github.com/2beens/gymprs/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const recordColumns = `id, user_id, exercise_id, lift_log_id, pr_type, rep_count, weight, value,
	achieved_at, previous_pr_id, previous_value, created_at, deleted_at`

// PgStore keeps the ledger in the personal_record table, next to lift_log.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{
		db: db,
	}
}

// InScope takes a transaction level advisory lock on the scope before running
// fn, so ledger writers of the same scope are serialized across connections
// and service instances.
func (s *PgStore) InScope(ctx context.Context, scope liftlogs.Scope, fn func(tx ScopeTx) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.records.in_scope")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", scope.UserID),
		attribute.String("exercise.id", scope.ExerciseID),
	)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = pkg.FinishTx(ctx, tx, err)
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, scope.String()); err != nil {
		return fmt.Errorf("lock scope [%s]: %w", scope, err)
	}

	return fn(&pgScopeTx{tx: tx, scope: scope})
}

func (s *PgStore) Records(ctx context.Context, scope liftlogs.Scope) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return queryRecords(ctx, s.db, `
		SELECT `+recordColumns+`
		FROM personal_record
		WHERE user_id = $1 AND exercise_id = $2 AND deleted_at IS NULL
		ORDER BY pr_type, rep_count, achieved_at, id
	`, scope.UserID, scope.ExerciseID)
}

// DeletedRecords returns the records earlier rebuilds of the scope replaced,
// most recently deleted first.
func (s *PgStore) DeletedRecords(ctx context.Context, scope liftlogs.Scope) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.records.list_deleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return queryRecords(ctx, s.db, `
		SELECT `+recordColumns+`
		FROM personal_record
		WHERE user_id = $1 AND exercise_id = $2 AND deleted_at IS NOT NULL
		ORDER BY deleted_at DESC, pr_type, rep_count, achieved_at, id
	`, scope.UserID, scope.ExerciseID)
}

type pgScopeTx struct {
	tx    pgx.Tx
	scope liftlogs.Scope
}

func (t *pgScopeTx) ListLogs(ctx context.Context, before *liftlogs.Position) ([]liftlogs.LiftLog, error) {
	return liftlogs.ListScope(ctx, t.tx, t.scope, before)
}

func (t *pgScopeTx) ListRecords(ctx context.Context) ([]PersonalRecord, error) {
	return queryRecords(ctx, t.tx, `
		SELECT `+recordColumns+`
		FROM personal_record
		WHERE user_id = $1 AND exercise_id = $2 AND deleted_at IS NULL
		ORDER BY achieved_at, id
	`, t.scope.UserID, t.scope.ExerciseID)
}

func (t *pgScopeTx) LatestRecord(ctx context.Context, key ChainKey) (*PersonalRecord, error) {
	recs, err := queryRecords(ctx, t.tx, `
		SELECT `+recordColumns+`
		FROM personal_record
		WHERE user_id = $1 AND exercise_id = $2 AND deleted_at IS NULL
		  AND pr_type = $3 AND rep_count IS NOT DISTINCT FROM $4::integer
		ORDER BY achieved_at DESC, id DESC
		LIMIT 1
	`, t.scope.UserID, t.scope.ExerciseID, key.Type, key.repCountPtr())
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func (t *pgScopeTx) AddRecord(ctx context.Context, record PersonalRecord) (*PersonalRecord, error) {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO personal_record
			(user_id, exercise_id, lift_log_id, pr_type, rep_count, weight, value,
			 achieved_at, previous_pr_id, previous_value)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`,
		record.UserID, record.ExerciseID, record.LiftLogID, record.Type, record.RepCount,
		record.Weight, record.Value, record.AchievedAt, record.PreviousPRID, record.PreviousValue,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	return &record, nil
}

// DeleteRecords soft-deletes the scope's live records.
func (t *pgScopeTx) DeleteRecords(ctx context.Context) (int, error) {
	tag, err := t.tx.Exec(ctx, `
		UPDATE personal_record SET deleted_at = NOW()
		WHERE user_id = $1 AND exercise_id = $2 AND deleted_at IS NULL
	`, t.scope.UserID, t.scope.ExerciseID)
	if err != nil {
		return 0, fmt.Errorf("delete records: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (t *pgScopeTx) SetLogFlags(ctx context.Context, logID int, isPR bool, prCount int) error {
	return liftlogs.SetPRFlags(ctx, t.tx, logID, isPR, prCount)
}

func (t *pgScopeTx) ResetLogFlags(ctx context.Context) error {
	return liftlogs.ResetPRFlags(ctx, t.tx, t.scope)
}

func queryRecords(ctx context.Context, q liftlogs.Querier, sql string, args ...any) ([]PersonalRecord, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("records [query]: %w", err)
	}
	defer rows.Close()

	recs := make([]PersonalRecord, 0)
	for rows.Next() {
		var rec PersonalRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.ExerciseID,
			&rec.LiftLogID,
			&rec.Type,
			&rec.RepCount,
			&rec.Weight,
			&rec.Value,
			&rec.AchievedAt,
			&rec.PreviousPRID,
			&rec.PreviousValue,
			&rec.CreatedAt,
			&rec.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("records [rows scan]: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records [rows error]: %w", err)
	}

	return recs, nil
}
