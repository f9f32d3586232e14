package liftlogs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymprs/internal/telemetry/tracing"
	"github.com/2beens/gymprs/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so scope reads can
// run inside the ledger transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type ListParams struct {
	Scope
	From *time.Time
	To   *time.Time
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, log LiftLog) (_ *LiftLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.liftlogs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metadataJson, err := json.Marshal(log.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = pkg.FinishTx(ctx, tx, err)
	}()

	err = tx.QueryRow(
		ctx,
		`INSERT INTO lift_log
				(user_id, exercise_id, logged_at, metadata)
				VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;`,
		log.UserID, log.ExerciseID, log.LoggedAt, metadataJson,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownExercise, log.ExerciseID)
		}
		return nil, fmt.Errorf("insert lift log: %w", err)
	}

	if err := insertSets(ctx, tx, log.ID, log.Sets); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("liftlog.id", log.ID))
	log.IsPR = false
	log.PRCount = 0
	return &log, nil
}

// Update replaces the log's fields and sets, and returns the scope the log
// belonged to before the update (it differs when user or exercise changed).
func (r *Repo) Update(ctx context.Context, log *LiftLog) (_ Scope, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.liftlogs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", log.ID))

	metadataJson, err := json.Marshal(log.Metadata)
	if err != nil {
		return Scope{}, fmt.Errorf("marshal metadata: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Scope{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = pkg.FinishTx(ctx, tx, err)
	}()

	var previous Scope
	err = tx.QueryRow(
		ctx,
		`UPDATE lift_log AS l
				SET user_id = $1, exercise_id = $2, logged_at = $3, metadata = $4
			FROM (SELECT id, user_id, exercise_id FROM lift_log WHERE id = $5 FOR UPDATE) AS old
			WHERE l.id = old.id
			RETURNING old.user_id, old.exercise_id, l.is_pr, l.pr_count, l.created_at;`,
		log.UserID, log.ExerciseID, log.LoggedAt, metadataJson, log.ID,
	).Scan(&previous.UserID, &previous.ExerciseID, &log.IsPR, &log.PRCount, &log.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Scope{}, ErrLogNotFound
		}
		if pkg.IsForeignKeyViolationError(err) {
			return Scope{}, fmt.Errorf("%w: %s", ErrUnknownExercise, log.ExerciseID)
		}
		return Scope{}, fmt.Errorf("update lift log: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM lift_log_set WHERE lift_log_id = $1`, log.ID); err != nil {
		return Scope{}, fmt.Errorf("delete old sets: %w", err)
	}
	if err := insertSets(ctx, tx, log.ID, log.Sets); err != nil {
		return Scope{}, err
	}

	return previous, nil
}

// Delete removes the log, its sets and (by cascade) the records it produced.
func (r *Repo) Delete(ctx context.Context, id int) (_ Scope, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.liftlogs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var scope Scope
	err = r.db.QueryRow(
		ctx,
		`DELETE FROM lift_log WHERE id = $1 RETURNING user_id, exercise_id`,
		id,
	).Scan(&scope.UserID, &scope.ExerciseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Scope{}, ErrLogNotFound
		}
		return Scope{}, fmt.Errorf("delete lift log: %w", err)
	}

	return scope, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *LiftLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.liftlogs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	logs, err := queryLogs(ctx, r.db, `
		SELECT id, user_id, exercise_id, logged_at, is_pr, pr_count, metadata, created_at
		FROM lift_log
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, ErrLogNotFound
	}
	return &logs[0], nil
}

// List returns a page of the scope's logs, newest first.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []LiftLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.liftlogs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("params.userId", params.UserID),
		attribute.String("params.exerciseId", params.ExerciseID),
	)

	if params.Size <= 0 {
		params.Size = 50
	}

	return queryLogs(ctx, r.db, `
		SELECT id, user_id, exercise_id, logged_at, is_pr, pr_count, metadata, created_at
		FROM lift_log
		WHERE user_id = $1
		  AND ($2::text = '' OR exercise_id = $2)
		  AND ($3::timestamptz IS NULL OR logged_at >= $3)
		  AND ($4::timestamptz IS NULL OR logged_at <= $4)
		ORDER BY logged_at DESC, id DESC
		LIMIT $5 OFFSET $6
	`,
		params.UserID, params.ExerciseID,
		params.From, params.To,
		params.Size, params.Size*params.Page,
	)
}

// Latest returns the most recent log of the scope logged at or before asOf
// (any time when asOf is nil). A nil log with nil error means the scope is empty.
func (r *Repo) Latest(ctx context.Context, scope Scope, asOf *time.Time) (_ *LiftLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.liftlogs.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := queryLogs(ctx, r.db, `
		SELECT id, user_id, exercise_id, logged_at, is_pr, pr_count, metadata, created_at
		FROM lift_log
		WHERE user_id = $1 AND exercise_id = $2
		  AND ($3::timestamptz IS NULL OR logged_at <= $3)
		ORDER BY logged_at DESC, id DESC
		LIMIT 1
	`, scope.UserID, scope.ExerciseID, asOf)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[0], nil
}

// HasLogsAfter reports whether any log of the scope other than excludeID
// comes after (t, excludeID) in replay order: logged later, or logged in the
// same second with a higher id.
func (r *Repo) HasLogsAfter(ctx context.Context, scope Scope, t time.Time, excludeID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.liftlogs.has_logs_after")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM lift_log
			WHERE user_id = $1 AND exercise_id = $2 AND id <> $4
			  AND (logged_at > $3 OR (logged_at = $3 AND id > $4))
		)
	`, scope.UserID, scope.ExerciseID, t, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query subsequent logs: %w", err)
	}
	return exists, nil
}

// ListScope returns every log of the scope in replay order (logged_at, id),
// optionally only the ones replayed strictly before the given position.
func ListScope(ctx context.Context, q Querier, scope Scope, before *Position) ([]LiftLog, error) {
	var (
		beforeAt *time.Time
		beforeID int
	)
	if before != nil {
		beforeAt = &before.LoggedAt
		beforeID = before.ID
	}
	return queryLogs(ctx, q, `
		SELECT id, user_id, exercise_id, logged_at, is_pr, pr_count, metadata, created_at
		FROM lift_log
		WHERE user_id = $1 AND exercise_id = $2
		  AND ($3::timestamptz IS NULL OR logged_at < $3 OR (logged_at = $3 AND id < $4))
		ORDER BY logged_at, id
	`, scope.UserID, scope.ExerciseID, beforeAt, beforeID)
}

// SetPRFlags stores the result of detection on the log row.
func SetPRFlags(ctx context.Context, q Querier, logID int, isPR bool, prCount int) error {
	tag, err := q.Exec(ctx, `UPDATE lift_log SET is_pr = $1, pr_count = $2 WHERE id = $3`, isPR, prCount, logID)
	if err != nil {
		return fmt.Errorf("set pr flags: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

// ResetPRFlags clears the PR flags of every log in the scope.
func ResetPRFlags(ctx context.Context, q Querier, scope Scope) error {
	_, err := q.Exec(ctx, `
		UPDATE lift_log SET is_pr = FALSE, pr_count = 0
		WHERE user_id = $1 AND exercise_id = $2
	`, scope.UserID, scope.ExerciseID)
	if err != nil {
		return fmt.Errorf("reset pr flags: %w", err)
	}
	return nil
}

func queryLogs(ctx context.Context, q Querier, sql string, args ...any) ([]LiftLog, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("lift logs [query]: %w", err)
	}
	defer rows.Close()

	logs := make([]LiftLog, 0)
	byID := make(map[int]int)
	for rows.Next() {
		var log LiftLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.ExerciseID,
			&log.LoggedAt,
			&log.IsPR,
			&log.PRCount,
			&log.Metadata,
			&log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("lift logs [rows scan]: %w", err)
		}
		byID[log.ID] = len(logs)
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lift logs [rows error]: %w", err)
	}
	rows.Close()

	if len(logs) == 0 {
		return logs, nil
	}

	ids := make([]int, 0, len(logs))
	for _, l := range logs {
		ids = append(ids, l.ID)
	}

	setRows, err := q.Query(ctx, `
		SELECT lift_log_id, weight, reps, notes, band_color, duration_seconds
		FROM lift_log_set
		WHERE lift_log_id = ANY($1)
		ORDER BY lift_log_id, position
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("lift log sets [query]: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var logID int
		var s Set
		if err := setRows.Scan(&logID, &s.Weight, &s.Reps, &s.Notes, &s.BandColor, &s.DurationSeconds); err != nil {
			return nil, fmt.Errorf("lift log sets [rows scan]: %w", err)
		}
		if i, ok := byID[logID]; ok {
			logs[i].Sets = append(logs[i].Sets, s)
		}
	}
	if err := setRows.Err(); err != nil {
		return nil, fmt.Errorf("lift log sets [rows error]: %w", err)
	}

	return logs, nil
}

func insertSets(ctx context.Context, tx pgx.Tx, logID int, sets []Set) error {
	batch := &pgx.Batch{}
	for i, s := range sets {
		batch.Queue(
			`INSERT INTO lift_log_set
				(lift_log_id, position, weight, reps, notes, band_color, duration_seconds)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			logID, i, s.Weight, s.Reps, s.Notes, s.BandColor, s.DurationSeconds,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert sets: %w", err)
	}
	return nil
}
