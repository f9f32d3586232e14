package events

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/gymprs/internal/telemetry/tracing"
	"github.com/2beens/gymprs/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type EventParams struct {
	Type       *EventType
	UserID     *int
	ExerciseID *string
	From       *time.Time
	To         *time.Time
}

type ListParams struct {
	EventParams
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

// Add stores all events in one transaction and returns them with their ids.
func (r *Repo) Add(ctx context.Context, events ...Event) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("events.count", len(events)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = pkg.FinishTx(ctx, tx, err)
	}()

	added := make([]Event, 0, len(events))
	for _, event := range events {
		if event.Data == nil {
			event.Data = map[string]string{}
		}
		if err := tx.QueryRow(ctx, `
			INSERT INTO gymstats_event (type, data, timestamp)
			VALUES ($1, $2, $3)
			RETURNING id
		`,
			event.Type,
			event.Data,
			event.Timestamp,
		).Scan(&event.ID); err != nil {
			return nil, fmt.Errorf("insert event [%s]: %w", event.Type, err)
		}
		added = append(added, event)
	}

	return added, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event := &Event{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, type, data, timestamp
			FROM gymstats_event
			WHERE id = $1
		`, id).
		Scan(&event.ID, &event.Type, &event.Data, &event.Timestamp)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	params.setSpanAttributes(span.SetAttributes)

	typeFilter, userFilter := params.filterArgs()
	events := make([]*Event, 0)
	rows, err := r.db.Query(ctx, `
		SELECT id, type, data, timestamp
		FROM gymstats_event
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::text IS NULL OR data->>'user_id' = $2)
		  AND ($3::text IS NULL OR data->>'exercise_id' = $3)
		  AND ($4::timestamptz IS NULL OR timestamp >= $4)
		  AND ($5::timestamptz IS NULL OR timestamp <= $5)
		ORDER BY timestamp DESC, id DESC
		LIMIT $6 OFFSET $7;
	`,
		typeFilter, userFilter, params.ExerciseID,
		params.From, params.To,
		params.Size, params.Size*params.Page,
	)
	if err != nil {
		return nil, fmt.Errorf("events [query]: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		event := &Event{}
		if err := rows.Scan(&event.ID, &event.Type, &event.Data, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("events [rows scan]: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("events [rows error]: %w", err)
	}

	return events, nil
}

func (r *Repo) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	typeFilter, userFilter := ListParams{EventParams: params}.filterArgs()
	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM gymstats_event
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::text IS NULL OR data->>'user_id' = $2)
		  AND ($3::text IS NULL OR data->>'exercise_id' = $3)
		  AND ($4::timestamptz IS NULL OR timestamp >= $4)
		  AND ($5::timestamptz IS NULL OR timestamp <= $5);
	`,
		typeFilter, userFilter, params.ExerciseID,
		params.From, params.To,
	).Scan(&count)
	if err != nil {
		return -1, fmt.Errorf("count events: %w", err)
	}

	return count, nil
}

func (p ListParams) filterArgs() (*string, *string) {
	var typeFilter, userFilter *string
	if p.Type != nil {
		t := p.Type.String()
		typeFilter = &t
	}
	if p.UserID != nil {
		u := strconv.Itoa(*p.UserID)
		userFilter = &u
	}
	return typeFilter, userFilter
}

func (p ListParams) setSpanAttributes(set func(kv ...attribute.KeyValue)) {
	if p.Type != nil {
		set(attribute.String("type", p.Type.String()))
	}
	if p.UserID != nil {
		set(attribute.Int("user.id", *p.UserID))
	}
	if p.ExerciseID != nil {
		set(attribute.String("exercise.id", *p.ExerciseID))
	}
	if p.From != nil {
		set(attribute.String("from", p.From.String()))
	}
	if p.To != nil {
		set(attribute.String("to", p.To.String()))
	}
	set(attribute.Int("page", p.Page), attribute.Int("size", p.Size))
}
