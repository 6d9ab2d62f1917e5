package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoicelab/accounting-backbone/internal/apperrors"
	"github.com/invoicelab/accounting-backbone/internal/platform/ctxlog"
)

// BaseRepository carries the shared pool and the transaction helpers used by
// posting writes. Single-statement reads go straight through Pool.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin opens the DB transaction that a posting's header, lines, and claim
// update share.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback abandons a transaction. Callers defer it on every exit path, so a
// rollback after commit is expected and silent; any other failure is only
// worth a log line since the write already failed for its own reason.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		ctxlog.FromCtx(ctx).Warn("Failed to roll back transaction", "error", err)
	}
}
