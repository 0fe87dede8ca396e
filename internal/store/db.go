package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql operations the user store needs.
// Both *sql.DB and *sql.Tx satisfy it, so store methods run the same
// whether they are given a plain connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
