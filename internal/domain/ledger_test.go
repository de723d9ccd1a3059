package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerEntry_DefaultsCategoryPerType(t *testing.T) {
	e, err := NewLedgerEntry("u1", EntrySaving, "", decimal.NewFromInt(50), "rainy day", "2025-06-01", testNow)
	require.NoError(t, err)
	assert.Equal(t, "Savings", e.Category)

	e, err = NewLedgerEntry("u1", EntryExpense, " ", decimal.NewFromInt(5), "coffee", "2025-06-01", testNow)
	require.NoError(t, err)
	assert.Equal(t, "Food", e.Category)
}

func TestNewLedgerEntry_KeepsFreeTextCategory(t *testing.T) {
	e, err := NewLedgerEntry("u1", EntryExpense, "Pets", decimal.RequireFromString("12.50"), " vet ", "2025-06-01", testNow)
	require.NoError(t, err)
	assert.Equal(t, "Pets", e.Category)
	assert.Equal(t, "vet", e.Description)
	assert.False(t, IsKnownCategory(EntryExpense, "Pets"))
	assert.ErrorIs(t, CheckCategory(EntryExpense, "Pets"), ErrInvalid)
}

func TestNewLedgerEntry_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		typ    EntryType
		amount decimal.Decimal
		desc   string
		date   string
	}{
		{"unknown type", EntryType("loan"), decimal.NewFromInt(1), "x", "2025-06-01"},
		{"zero amount", EntryIncome, decimal.Zero, "x", "2025-06-01"},
		{"negative amount", EntryIncome, decimal.NewFromInt(-3), "x", "2025-06-01"},
		{"empty description", EntryIncome, decimal.NewFromInt(3), "  ", "2025-06-01"},
		{"bad date", EntryIncome, decimal.NewFromInt(3), "x", "2025-13-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLedgerEntry("u1", tc.typ, "Salary", tc.amount, tc.desc, tc.date, testNow)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestCategoriesFor(t *testing.T) {
	assert.Len(t, CategoriesFor(EntryExpense), 8)
	assert.Equal(t, []string{"Savings"}, CategoriesFor(EntrySaving))
	assert.Contains(t, CategoriesFor(EntryIncome), "Freelance")
	assert.NoError(t, CheckCategory(EntryIncome, "Salary"))
}
