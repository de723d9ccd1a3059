package analytics

import (
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultTrendMonths is the trend window used when callers pass a non-positive value.
const DefaultTrendMonths = 6

// FinanceStats totals a month of ledger entries.
// Balance treats savings as an outflow: Income - Expenses - Savings.
type FinanceStats struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
	Balance  decimal.Decimal
}

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	Name  string
	Value decimal.Decimal
}

// TrendPoint holds one month of the income/expense/savings trend.
type TrendPoint struct {
	Month    string // "YYYY-MM"
	Label    string // short month name, e.g. "Jun"
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

// MonthlyFinanceStats sums entries dated within month by type.
func MonthlyFinanceStats(entries []*domain.LedgerEntry, month string) FinanceStats {
	s := FinanceStats{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Savings:  decimal.Zero,
	}
	for _, e := range entries {
		if !inMonth(e.Date, month) {
			continue
		}
		switch e.Type {
		case domain.EntryIncome:
			s.Income = s.Income.Add(e.Amount)
		case domain.EntryExpense:
			s.Expenses = s.Expenses.Add(e.Amount)
		case domain.EntrySaving:
			s.Savings = s.Savings.Add(e.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses).Sub(s.Savings)
	return s
}

// ExpensesByCategory sums the month's expenses per category, in order of
// each category's first appearance.
func ExpensesByCategory(entries []*domain.LedgerEntry, month string) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, e := range entries {
		if e.Type != domain.EntryExpense || !inMonth(e.Date, month) {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			out = append(out, CategoryTotal{Name: e.Category, Value: decimal.Zero})
		}
		out[i].Value = out[i].Value.Add(e.Amount)
	}
	return out
}

// MonthlyTrend returns monthsBack months of totals ending with now's month,
// oldest first.
func MonthlyTrend(entries []*domain.LedgerEntry, monthsBack int, now time.Time) []TrendPoint {
	if monthsBack <= 0 {
		monthsBack = DefaultTrendMonths
	}
	points := make([]TrendPoint, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		m := ShiftMonth(now, -i)
		key := MonthKey(m)
		stats := MonthlyFinanceStats(entries, key)
		points = append(points, TrendPoint{
			Month:    key,
			Label:    m.Format("Jan"),
			Income:   stats.Income,
			Expenses: stats.Expenses,
			Savings:  stats.Savings,
		})
	}
	return points
}

// FilterEntries returns entries matching an optional month prefix and an
// optional exact type. With neither filter the input is returned as is.
func FilterEntries(entries []*domain.LedgerEntry, month string, typ domain.EntryType) []*domain.LedgerEntry {
	if month == "" && typ == "" {
		return entries
	}
	var out []*domain.LedgerEntry
	for _, e := range entries {
		if month != "" && !inMonth(e.Date, month) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	return out
}
