package analytics

import (
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// testNow is mid-morning on 2025-06-15.
var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return DateKey(testNow.AddDate(0, 0, -n))
}

type taskOpt func(*domain.Task)

func done(t *domain.Task)  { t.Status = domain.TaskCompleted }
func daily(t *domain.Task) { t.IsDaily = true }
func high(t *domain.Task)  { t.Priority = domain.PriorityHigh }
func low(t *domain.Task)   { t.Priority = domain.PriorityLow }

func titled(title string) taskOpt {
	return func(t *domain.Task) { t.Title = title }
}

func mkTask(date string, opts ...taskOpt) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		OwnerID:   "owner",
		Title:     "task " + date,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskPending,
		Date:      date,
		CreatedAt: testNow,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

func mkEntry(typ domain.EntryType, category, amount, date string) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:          uuid.New().String(),
		OwnerID:     "owner",
		Type:        typ,
		Category:    category,
		Amount:      decimal.RequireFromString(amount),
		Description: category,
		Date:        date,
		CreatedAt:   testNow,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
