package testutil

import (
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedNow is the reference clock used by fixtures and service tests.
var FixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// DaysAgo returns the calendar date n days before FixedNow.
func DaysAgo(n int) string {
	return FixedNow.AddDate(0, 0, -n).Format(domain.DateLayout)
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskDate(d string) TaskOption {
	return func(t *domain.Task) {
		t.Date = d
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Status = domain.TaskCompleted
	}
}

func WithDaily() TaskOption {
	return func(t *domain.Task) {
		t.IsDaily = true
	}
}

func WithTaskCreatedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = ts
	}
}

func NewTestTask(ownerID, title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskPending,
		Date:      FixedNow.Format(domain.DateLayout),
		CreatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Ledger entry options
type EntryOption func(*domain.LedgerEntry)

func WithEntryDate(d string) EntryOption {
	return func(e *domain.LedgerEntry) {
		e.Date = d
	}
}

func WithCategory(c string) EntryOption {
	return func(e *domain.LedgerEntry) {
		e.Category = c
	}
}

func WithDescription(d string) EntryOption {
	return func(e *domain.LedgerEntry) {
		e.Description = d
	}
}

func WithEntryCreatedAt(ts time.Time) EntryOption {
	return func(e *domain.LedgerEntry) {
		e.CreatedAt = ts
	}
}

// NewTestEntry builds an entry; amount is parsed with decimal.RequireFromString.
func NewTestEntry(ownerID string, typ domain.EntryType, amount string, opts ...EntryOption) *domain.LedgerEntry {
	e := &domain.LedgerEntry{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Type:        typ,
		Category:    domain.CategoriesFor(typ)[0],
		Amount:      decimal.RequireFromString(amount),
		Description: "test entry",
		Date:        FixedNow.Format(domain.DateLayout),
		CreatedAt:   FixedNow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Profile options
type ProfileOption func(*domain.Profile)

func WithNickname(n string) ProfileOption {
	return func(p *domain.Profile) {
		p.Nickname = n
	}
}

func WithGoal(g string) ProfileOption {
	return func(p *domain.Profile) {
		p.Goal = g
	}
}

func NewTestProfile(ownerID string, opts ...ProfileOption) *domain.Profile {
	p := &domain.Profile{
		OwnerID:   ownerID,
		UpdatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestUser(email string) *domain.User {
	return &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "not-a-real-hash",
		CreatedAt:    FixedNow,
	}
}
