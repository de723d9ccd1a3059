package db

import (
	"context"
	"database/sql"
)

// DBTX is the query surface repositories need. A *sql.DB runs each statement
// on its own; a *sql.Tx handed out by a UnitOfWork groups them.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
