package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/lifetrack/internal/db"
)

// FailOnNthExecUoW runs callbacks in real transactions but makes the
// FailOn-th write return Err. Writes are ExecContext calls counted from 1
// across every transaction the UoW opens; reads pass through uncounted.
// Service tests use it to check that a multi-record write such as a backup
// import leaves nothing behind when one insert fails.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	writes atomic.Int32
}

// Writes reports how many writes were attempted, the failing one included.
func (u *FailOnNthExecUoW) Writes() int {
	return int(u.writes.Load())
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &faultyTx{DBTX: tx, uow: u})
	})
}

type faultyTx struct {
	db.DBTX
	uow *FailOnNthExecUoW
}

func (f *faultyTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.writes.Add(1) == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
