package app

import (
	"time"

	"github.com/alexanderramin/lifetrack/internal/analytics"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/shopspring/decimal"
)

// Every request carries an optional Now; nil means the wall clock.

type AddTaskRequest struct {
	Title    string
	Priority domain.Priority
	Date     string // defaults to today
	IsDaily  bool
	Now      *time.Time
}

// TaskFilter narrows a task listing. Zero values mean "all".
type TaskFilter struct {
	Month     string
	Status    domain.TaskStatus
	DailyOnly bool
}

type AddEntryRequest struct {
	Type           domain.EntryType
	Category       string
	Amount         decimal.Decimal
	Description    string
	Date           string // defaults to today
	StrictCategory bool
	Now            *time.Time
}

// EntryFilter narrows a ledger listing. Zero values mean "all".
type EntryFilter struct {
	Month string
	Type  domain.EntryType
}

type DashboardRequest struct {
	Now         *time.Time
	Month       string // defaults to the month of Now
	TrendMonths int
	HeatmapDays int
}

type DashboardResponse struct {
	GeneratedAt  time.Time
	Month        string
	Tasks        analytics.TaskStats
	Rituals      analytics.TaskStats
	Gamification analytics.GamificationStats
	Finance      analytics.FinanceStats
	Categories   []analytics.CategoryTotal
	Trend        []analytics.TrendPoint
	Heatmap      []analytics.HeatmapDay
	Insights     []analytics.Insight
	Profile      domain.Profile
	Focus        *domain.Task // nil when nothing is pending
	MonthTasks   []*domain.Task
	DailyTasks   []*domain.Task
	MonthEntries []*domain.LedgerEntry
}

type FinanceRequest struct {
	Now         *time.Time
	Month       string
	Type        domain.EntryType
	TrendMonths int
}

type FinanceSummary struct {
	Month      string
	Stats      analytics.FinanceStats
	Categories []analytics.CategoryTotal
	Trend      []analytics.TrendPoint
	Entries    []*domain.LedgerEntry
}

// AuthResult is a signed-in user together with the session that proves it.
type AuthResult struct {
	User    *domain.User
	Session *domain.AuthSession
}

// ResolveNow returns *now, or the wall clock when now is nil.
func ResolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}

// ImportResult counts what a backup import stored.
type ImportResult struct {
	TaskCount    int
	EntryCount   int
	ProfileSaved bool
}
