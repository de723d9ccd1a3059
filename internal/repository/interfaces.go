package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
)

// Every owner-scoped method treats rows of other owners as missing.

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	UpdateStatus(ctx context.Context, ownerID, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, ownerID, id string) error
}

type LedgerRepo interface {
	Create(ctx context.Context, e *domain.LedgerEntry) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.LedgerEntry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.LedgerEntry, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type ProfileRepo interface {
	Get(ctx context.Context, ownerID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthSessionRepo interface {
	Create(ctx context.Context, s *domain.AuthSession) error
	Get(ctx context.Context, token string) (*domain.AuthSession, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
