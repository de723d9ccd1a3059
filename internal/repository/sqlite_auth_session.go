package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/alexanderramin/lifetrack/internal/domain"
)

// SQLiteAuthSessionRepo implements AuthSessionRepo using a SQLite database.
type SQLiteAuthSessionRepo struct {
	db db.DBTX
}

func NewSQLiteAuthSessionRepo(conn db.DBTX) *SQLiteAuthSessionRepo {
	return &SQLiteAuthSessionRepo{db: conn}
}

func (r *SQLiteAuthSessionRepo) Create(ctx context.Context, s *domain.AuthSession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auth_sessions (token, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		s.Token, s.UserID, formatTimestamp(s.CreatedAt), formatTimestamp(s.ExpiresAt))
	if err != nil {
		return fmt.Errorf("inserting auth session: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) Get(ctx context.Context, token string) (*domain.AuthSession, error) {
	var s domain.AuthSession
	var createdAt, expiresAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT token, user_id, created_at, expires_at FROM auth_sessions WHERE token = ?`, token,
	).Scan(&s.Token, &s.UserID, &createdAt, &expiresAt)
	if err != nil {
		return nil, notFoundOr(err, "auth session")
	}
	if s.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	if s.ExpiresAt, err = parseTimestamp("expires_at", expiresAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete is idempotent: removing an unknown token is not an error.
func (r *SQLiteAuthSessionRepo) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("deleting auth session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions that expired at or before now and reports how many.
func (r *SQLiteAuthSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM auth_sessions WHERE expires_at <= ?`, formatTimestamp(now))
	if err != nil {
		return 0, fmt.Errorf("deleting expired auth sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting expired auth sessions: %w", err)
	}
	return n, nil
}
