package transactor

import (
	"context"
	"fmt"

	"github.com/jackc/pgtype/pgxtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ReadOnlySnapshot makes every statement inside transaction observe the same snapshot
var ReadOnlySnapshot = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

type pgxTxKey struct{}

func withPgxTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, pgxTxKey{}, tx)
}

func pgxTxValue(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(pgxTxKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

// PgxTransactor runs functions within pgx transaction, transaction is passed through context
type PgxTransactor interface {
	WithinTransactionWithOptions(context.Context, func(context.Context) error, pgx.TxOptions) error
}

type pgxTransactor struct {
	pool *pgxpool.Pool
}

// NewPgxTransactor builds PgxTransactor on top of pool
func NewPgxTransactor(p *pgxpool.Pool) PgxTransactor {
	return &pgxTransactor{pool: p}
}

// WithinTransactionWithOptions joins transaction already stored in context, otherwise starts new one
func (t *pgxTransactor) WithinTransactionWithOptions(ctx context.Context, txFunc func(context.Context) error, opts pgx.TxOptions) (err error) {
	if pgxTxValue(ctx) != nil {
		return txFunc(ctx)
	}

	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection - %w", err)
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction - %w", err)
	}
	defer func() {
		var txErr error
		if err != nil {
			txErr = tx.Rollback(ctx)
		} else {
			txErr = tx.Commit(ctx)
		}

		if txErr != nil && err == nil {
			err = txErr
		}
	}()

	err = txFunc(withPgxTx(ctx, tx))
	return err
}

// PgxWithinTransactionExecutor picks executor for the query
type PgxWithinTransactionExecutor interface {
	Executor(ctx context.Context) PgxQueryExecutor
}

// PgxQueryExecutor is common behavior of pool and transaction
type PgxQueryExecutor interface {
	pgxtype.Querier
	Begin(context.Context) (pgx.Tx, error)
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
	CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error)
}

type pgxWithinTransactionExecutor struct {
	pool *pgxpool.Pool
}

// NewPgxWithinTransactionExecutor builds executor which prefers transaction stored in context over pool
func NewPgxWithinTransactionExecutor(p *pgxpool.Pool) PgxWithinTransactionExecutor {
	return &pgxWithinTransactionExecutor{pool: p}
}

func (e *pgxWithinTransactionExecutor) Executor(ctx context.Context) PgxQueryExecutor {
	tx := pgxTxValue(ctx)
	if tx != nil {
		return tx
	}
	return e.pool
}
