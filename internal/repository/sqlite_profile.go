package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/alexanderramin/lifetrack/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, ownerID string) (*domain.Profile, error) {
	query := `SELECT owner_id, nickname, age, fav_quote, goal, updated_at
		FROM profiles WHERE owner_id = ?`
	var p domain.Profile
	var updatedAt string
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&p.OwnerID,
		&p.Nickname,
		&p.Age,
		&p.FavQuote,
		&p.Goal,
		&updatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "profile")
	}
	if p.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (owner_id, nickname, age, fav_quote, goal, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			nickname = excluded.nickname,
			age = excluded.age,
			fav_quote = excluded.fav_quote,
			goal = excluded.goal,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.OwnerID,
		p.Nickname,
		p.Age,
		p.FavQuote,
		p.Goal,
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
