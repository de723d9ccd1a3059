package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lifetrack/internal/analytics"
	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/importer"
)

// Every owner-scoped method takes the signed-in user's ID as ownerID.

type TaskService interface {
	Add(ctx context.Context, ownerID string, req app.AddTaskRequest) (*domain.Task, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Task, error)
	List(ctx context.Context, ownerID string, filter app.TaskFilter) ([]*domain.Task, error)
	Toggle(ctx context.Context, ownerID, id string) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type LedgerService interface {
	Add(ctx context.Context, ownerID string, req app.AddEntryRequest) (*domain.LedgerEntry, error)
	Get(ctx context.Context, ownerID, id string) (*domain.LedgerEntry, error)
	List(ctx context.Context, ownerID string, filter app.EntryFilter) ([]*domain.LedgerEntry, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type ProfileService interface {
	Get(ctx context.Context, ownerID string) (*domain.Profile, error)
	Update(ctx context.Context, ownerID string, patch domain.ProfilePatch) (*domain.Profile, error)
}

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*app.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*app.AuthResult, error)
	SignOut(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (*app.AuthResult, error)
}

type DashboardService interface {
	Dashboard(ctx context.Context, ownerID string, req app.DashboardRequest) (*app.DashboardResponse, error)
}

type InsightService interface {
	Insights(ctx context.Context, ownerID string, now time.Time) ([]analytics.Insight, error)
}

// BackupService moves an owner's records in and out of the JSON backup format.
type BackupService interface {
	Export(ctx context.Context, ownerID string, now time.Time) (*importer.BackupSchema, error)
	Import(ctx context.Context, ownerID string, schema *importer.BackupSchema) (*app.ImportResult, error)
}

type FinanceService interface {
	Summary(ctx context.Context, ownerID string, req app.FinanceRequest) (*app.FinanceSummary, error)
}
