package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category sets offered per entry type. Stored categories are free text; these
// lists only drive defaults and the optional strict check.
var (
	ExpenseCategories = []string{
		"Food", "Travel", "Bills", "Shopping",
		"Entertainment", "Health", "Education", "Other",
	}
	IncomeCategories = []string{"Salary", "Freelance", "Investment", "Other Income"}
	SavingCategories = []string{"Savings"}
)

// LedgerEntry is one income, expense or saving transaction.
type LedgerEntry struct {
	ID          string
	OwnerID     string
	Type        EntryType
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        string
	CreatedAt   time.Time
}

// NewLedgerEntry validates its inputs and returns an entry. The caller assigns the ID.
func NewLedgerEntry(ownerID string, typ EntryType, category string, amount decimal.Decimal, description, date string, now time.Time) (*LedgerEntry, error) {
	if !ValidEntryTypes[string(typ)] {
		return nil, invalid("type", "must be one of income, expense, saving (got %q)", typ)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = CategoriesFor(typ)[0]
	}
	if !amount.IsPositive() {
		return nil, invalid("amount", "must be greater than zero (got %s)", amount.String())
	}
	description = strings.TrimSpace(description)
	if err := validateText("description", description); err != nil {
		return nil, err
	}
	if err := ValidateDate("date", date); err != nil {
		return nil, err
	}
	return &LedgerEntry{
		OwnerID:     ownerID,
		Type:        typ,
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   now,
	}, nil
}

// CategoriesFor returns the offered categories for an entry type.
func CategoriesFor(typ EntryType) []string {
	switch typ {
	case EntryExpense:
		return ExpenseCategories
	case EntrySaving:
		return SavingCategories
	default:
		return IncomeCategories
	}
}

// IsKnownCategory reports whether category is one of the offered choices for typ.
func IsKnownCategory(typ EntryType, category string) bool {
	for _, c := range CategoriesFor(typ) {
		if c == category {
			return true
		}
	}
	return false
}

// CheckCategory rejects categories outside the offered set for typ.
func CheckCategory(typ EntryType, category string) error {
	if IsKnownCategory(typ, category) {
		return nil
	}
	return invalid("category", "%q is not a %s category (choose from %s)",
		category, typ, strings.Join(CategoriesFor(typ), ", "))
}
