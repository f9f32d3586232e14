package mcp

import (
	"context"
	"fmt"

	"github.com/2beens/gymprs/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerTables are the tables an assistant may query; personal_record first,
// the rest are its inputs and outputs.
var ledgerTables = []string{"personal_record", "lift_log", "lift_log_set", "exercise_type", "gymstats_event"}

// SchemaRepo reads the live shape of the ledger tables from the catalog.
type SchemaRepo interface {
	LedgerSchema(ctx context.Context) (*LedgerSchema, error)
}

type LedgerSchema struct {
	Columns []SchemaColumn
	Indexes []SchemaIndex
}

type SchemaColumn struct {
	TableName  string
	ColumnName string
	DataType   string
	Nullable   bool
	Default    *string
}

// SchemaIndex carries the index definition as pg_indexes prints it, partial
// index predicates included.
type SchemaIndex struct {
	TableName  string
	IndexName  string
	Definition string
}

type pgSchemaRepo struct {
	pool *pgxpool.Pool
}

func NewPoolSchemaRepo(pool *pgxpool.Pool) SchemaRepo {
	return &pgSchemaRepo{pool: pool}
}

func (r *pgSchemaRepo) LedgerSchema(ctx context.Context) (_ *LedgerSchema, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.mcp.ledger_schema")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	batch := &pgx.Batch{}
	batch.Queue(`
		SELECT table_name, column_name, data_type, is_nullable = 'YES', column_default
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = ANY($1)
		ORDER BY table_name, ordinal_position
	`, ledgerTables)
	batch.Queue(`
		SELECT tablename, indexname, indexdef
		FROM pg_indexes
		WHERE schemaname = 'public' AND tablename = ANY($1)
		ORDER BY tablename, indexname
	`, ledgerTables)

	results := r.pool.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close schema batch: %w", closeErr)
		}
	}()

	colRows, err := results.Query()
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	columns, err := pgx.CollectRows(colRows, func(row pgx.CollectableRow) (SchemaColumn, error) {
		var c SchemaColumn
		err := row.Scan(&c.TableName, &c.ColumnName, &c.DataType, &c.Nullable, &c.Default)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect columns: %w", err)
	}

	idxRows, err := results.Query()
	if err != nil {
		return nil, fmt.Errorf("query indexes: %w", err)
	}
	indexes, err := pgx.CollectRows(idxRows, pgx.RowToStructByPos[SchemaIndex])
	if err != nil {
		return nil, fmt.Errorf("collect indexes: %w", err)
	}

	return &LedgerSchema{Columns: columns, Indexes: indexes}, nil
}
