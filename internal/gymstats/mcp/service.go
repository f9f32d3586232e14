package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/exercises"
	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/progression"
	"github.com/2beens/gymprs/internal/gymstats/records"
)

type exerciseTypesRepo interface {
	GetExerciseTypes(ctx context.Context, params exercises.GetExerciseTypesParams) ([]exercises.ExerciseType, error)
}

type ledgerReader interface {
	Records(ctx context.Context, scope liftlogs.Scope) ([]records.PersonalRecord, error)
}

type suggester interface {
	SuggestNext(ctx context.Context, userID int, exerciseID string, asOf *time.Time) (*progression.Suggestion, error)
}

type logsLister interface {
	List(ctx context.Context, params liftlogs.ListParams) ([]liftlogs.LiftLog, error)
}

// contextService is what the tool handlers need; ContextService implements it.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetExerciseTypes(ctx context.Context, params exercises.GetExerciseTypesParams) ([]exercises.ExerciseType, error)
	GetPersonalRecords(ctx context.Context, scope liftlogs.Scope, currentOnly bool) ([]records.PersonalRecord, error)
	SuggestNext(ctx context.Context, scope liftlogs.Scope, asOf *time.Time) (*progression.Suggestion, error)
	ListLiftLogs(ctx context.Context, params liftlogs.ListParams) ([]liftlogs.LiftLog, error)
}

type ContextServiceParams struct {
	Schema        SchemaRepo
	ExerciseTypes exerciseTypesRepo
	Ledger        ledgerReader
	Suggester     suggester
	Logs          logsLister
}

type ContextService struct {
	schema        SchemaRepo
	exerciseTypes exerciseTypesRepo
	ledger        ledgerReader
	suggester     suggester
	logs          logsLister
}

func NewContextService(params ContextServiceParams) *ContextService {
	return &ContextService{
		schema:        params.Schema,
		exerciseTypes: params.ExerciseTypes,
		ledger:        params.Ledger,
		suggester:     params.Suggester,
		logs:          params.Logs,
	}
}

// GetSchema describes the ledger tables as markdown: the columns of every
// table, then its indexes.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	schema, err := s.schema.LedgerSchema(ctx)
	if err != nil {
		return "", err
	}
	return formatLedgerSchema(schema), nil
}

func formatLedgerSchema(schema *LedgerSchema) string {
	if schema == nil || len(schema.Columns) == 0 {
		return "# Gymstats DB Schema\n\nNo gymstats tables found in the database.\n"
	}

	columns := make(map[string][]SchemaColumn)
	for _, c := range schema.Columns {
		columns[c.TableName] = append(columns[c.TableName], c)
	}
	indexes := make(map[string][]SchemaIndex)
	for _, idx := range schema.Indexes {
		indexes[idx.TableName] = append(indexes[idx.TableName], idx)
	}

	var b strings.Builder
	b.WriteString("# Gymstats DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(ledgerTables, ", "))
	b.WriteString(" (schema: public).\n")
	b.WriteString("personal_record rows form chains per (user, exercise, pr_type, rep_count), linked by previous_pr_id.\n")
	b.WriteString("Rows with deleted_at set were replaced by a rebuild and belong to no chain; filter on deleted_at IS NULL.\n")

	for _, table := range ledgerTables {
		cols, ok := columns[table]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n", table)
		for _, c := range cols {
			nullable, def := "NO", "-"
			if c.Nullable {
				nullable = "YES"
			}
			if c.Default != nil && *c.Default != "" {
				def = *c.Default
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, nullable, def)
		}
		if len(indexes[table]) > 0 {
			b.WriteString("\nIndexes:\n")
			for _, idx := range indexes[table] {
				fmt.Fprintf(&b, "- `%s`\n", idx.Definition)
			}
		}
	}

	return b.String()
}

func (s *ContextService) GetExerciseTypes(ctx context.Context, params exercises.GetExerciseTypesParams) ([]exercises.ExerciseType, error) {
	return s.exerciseTypes.GetExerciseTypes(ctx, params)
}

// GetPersonalRecords returns the scope's ledger, or the current record of
// every chain when currentOnly is set.
func (s *ContextService) GetPersonalRecords(ctx context.Context, scope liftlogs.Scope, currentOnly bool) ([]records.PersonalRecord, error) {
	recs, err := s.ledger.Records(ctx, scope)
	if err != nil {
		return nil, err
	}
	if currentOnly {
		return records.Current(recs), nil
	}
	return recs, nil
}

func (s *ContextService) SuggestNext(ctx context.Context, scope liftlogs.Scope, asOf *time.Time) (*progression.Suggestion, error) {
	return s.suggester.SuggestNext(ctx, scope.UserID, scope.ExerciseID, asOf)
}

func (s *ContextService) ListLiftLogs(ctx context.Context, params liftlogs.ListParams) ([]liftlogs.LiftLog, error) {
	return s.logs.List(ctx, params)
}
