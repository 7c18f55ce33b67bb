package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common interface implemented by *pgxpool.Pool, pgx.Tx and
// the pgxmock pool used in unit tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// DB is a Querier that can also start transactions. Repositories and the
// TxManager depend on it instead of *pgxpool.Pool.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// unexported context key type for storing tx
type txCtxKey struct{}

// txState is the transaction carried in a context together with callbacks
// queued to run once it commits.
type txState struct {
	tx          pgx.Tx
	afterCommit []func()
}

// withTx puts a transaction into the context.
func withTx(ctx context.Context, st *txState) context.Context {
	return context.WithValue(ctx, txCtxKey{}, st)
}

func txStateFromCtx(ctx context.Context) (*txState, bool) {
	st, ok := ctx.Value(txCtxKey{}).(*txState)
	return st, ok
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns the fallback (usually the pool).
func QuerierFromCtx(ctx context.Context, fallback Querier) Querier {
	if st, ok := txStateFromCtx(ctx); ok {
		return st.tx
	}
	return fallback
}
