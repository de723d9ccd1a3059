package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLen bounds task titles and ledger descriptions, in runes.
const MaxTitleLen = 100

// DateLayout is the ISO calendar-date format used for every Date field.
const DateLayout = "2006-01-02"

// Task is a one-off to-do or, when IsDaily is set, a daily ritual.
// Recurrence is a label only: a ritual is not re-created on later days.
type Task struct {
	ID        string
	OwnerID   string
	Title     string
	Priority  Priority
	Status    TaskStatus
	Date      string
	IsDaily   bool
	CreatedAt time.Time
}

// NewTask validates its inputs and returns a pending task. The caller assigns the ID.
func NewTask(ownerID, title string, priority Priority, date string, isDaily bool, now time.Time) (*Task, error) {
	title = strings.TrimSpace(title)
	if err := validateText("title", title); err != nil {
		return nil, err
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriorities[string(priority)] {
		return nil, invalid("priority", "must be one of low, medium, high (got %q)", priority)
	}
	if err := ValidateDate("date", date); err != nil {
		return nil, err
	}
	return &Task{
		OwnerID:   ownerID,
		Title:     title,
		Priority:  priority,
		Status:    TaskPending,
		Date:      date,
		IsDaily:   isDaily,
		CreatedAt: now,
	}, nil
}

// Toggle flips the task between pending and completed.
func (t *Task) Toggle() {
	if t.Status == TaskCompleted {
		t.Status = TaskPending
		return
	}
	t.Status = TaskCompleted
}

// IsCompleted reports whether the task has been checked off.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskCompleted
}

// ValidateDate checks that s is a calendar date in DateLayout.
func ValidateDate(field, s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return invalid(field, "must be a YYYY-MM-DD date (got %q)", s)
	}
	return nil
}

func validateText(field, s string) error {
	if s == "" {
		return invalid(field, "must not be empty")
	}
	if n := utf8.RuneCountInString(s); n > MaxTitleLen {
		return invalid(field, "must be at most %d characters (got %d)", MaxTitleLen, n)
	}
	return nil
}

// MonthLayout is the "YYYY-MM" month key format.
const MonthLayout = "2006-01"

// ValidateMonth checks that s is a month key in MonthLayout.
func ValidateMonth(field, s string) error {
	if _, err := time.Parse(MonthLayout, s); err != nil {
		return invalid(field, "must be a YYYY-MM month (got %q)", s)
	}
	return nil
}
