package pkg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/multierr"
)

// https://www.postgresql.org/docs/8.2/errcodes-appendix.html

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	var pqErr *pgconn.PgError
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	var pqErr *pgconn.PgError
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}

// FinishTx commits the transaction when err is nil, and rolls it back otherwise.
// Meant to be deferred with a named error return:
//
//	defer func() { err = pkg.FinishTx(ctx, tx, err) }()
func FinishTx(ctx context.Context, tx pgx.Tx, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			return multierr.Combine(err, fmt.Errorf("rollback: %w", rollbackErr))
		}
		return err
	}
	if commitErr := tx.Commit(ctx); commitErr != nil {
		return fmt.Errorf("commit: %w", commitErr)
	}
	return nil
}
