package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepo_CreateAndGetByID_PreservesAmount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLedgerRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestEntry("u1", domain.EntryExpense, "0.10",
		testutil.WithCategory("Food"),
		testutil.WithDescription("Coffee"),
	)
	require.NoError(t, repo.Create(ctx, entry))

	got, err := repo.GetByID(ctx, "u1", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryExpense, got.Type)
	assert.Equal(t, "Food", got.Category)
	assert.Equal(t, "Coffee", got.Description)
	assert.True(t, decimal.RequireFromString("0.10").Equal(got.Amount), "got %s", got.Amount)
}

func TestLedgerRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLedgerRepo(db)

	_, err := repo.GetByID(context.Background(), "u1", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "ledger entry")
}

func TestLedgerRepo_ListByOwner_OrderedByDateThenCreated(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLedgerRepo(db)
	ctx := context.Background()

	early := testutil.NewTestEntry("u1", domain.EntryIncome, "100", testutil.WithEntryDate("2025-06-01"))
	lateA := testutil.NewTestEntry("u1", domain.EntryExpense, "5", testutil.WithEntryDate("2025-06-10"),
		testutil.WithDescription("first"), testutil.WithEntryCreatedAt(testutil.FixedNow.Add(-time.Minute)))
	lateB := testutil.NewTestEntry("u1", domain.EntryExpense, "6", testutil.WithEntryDate("2025-06-10"),
		testutil.WithDescription("second"))
	other := testutil.NewTestEntry("u2", domain.EntrySaving, "50")
	for _, e := range []*domain.LedgerEntry{early, lateA, lateB, other} {
		require.NoError(t, repo.Create(ctx, e))
	}

	got, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, lateB.ID, got[0].ID)
	assert.Equal(t, lateA.ID, got[1].ID)
	assert.Equal(t, early.ID, got[2].ID)
}

func TestLedgerRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLedgerRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestEntry("u1", domain.EntrySaving, "20")
	require.NoError(t, repo.Create(ctx, entry))

	assert.True(t, errors.Is(repo.Delete(ctx, "u2", entry.ID), ErrNotFound))
	require.NoError(t, repo.Delete(ctx, "u1", entry.ID))

	got, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
