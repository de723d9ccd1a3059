package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated, private in-memory store that lives as long as t.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	store, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening in-memory store")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewTestUoW wraps store in the production unit of work.
func NewTestUoW(store *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(store)
}
