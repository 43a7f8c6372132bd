package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common query surface of *pgxpool.Pool and pgx.Tx, so
// repositories work unchanged inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is a Querier that can also open transactions. Satisfied by
// *pgxpool.Pool and, via savepoints, by pgx.Tx.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}
