package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/shopspring/decimal"
)

const ledgerColumns = `id, owner_id, type, category, amount, description, date, created_at`

// SQLiteLedgerRepo implements LedgerRepo using a SQLite database.
// Amounts are stored as decimal strings so no precision is lost.
type SQLiteLedgerRepo struct {
	db db.DBTX
}

func NewSQLiteLedgerRepo(conn db.DBTX) *SQLiteLedgerRepo {
	return &SQLiteLedgerRepo{db: conn}
}

func (r *SQLiteLedgerRepo) Create(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.OwnerID,
		string(e.Type),
		e.Category,
		e.Amount.String(),
		e.Description,
		e.Date,
		formatTimestamp(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting ledger entry: %w", err)
	}
	return nil
}

func (r *SQLiteLedgerRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE owner_id = ? AND id = ?`
	e, err := scanLedgerEntry(r.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		return nil, notFoundOr(err, "ledger entry")
	}
	return e, nil
}

// ListByOwner returns the owner's entries, newest transaction date first.
func (r *SQLiteLedgerRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE owner_id = ?
		ORDER BY date DESC, created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteLedgerRepo) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ledger_entries WHERE owner_id = ? AND id = ?`, ownerID, id)
	if err != nil {
		return fmt.Errorf("deleting ledger entry: %w", err)
	}
	return requireAffected(res, "ledger entry")
}

func scanLedgerEntry(s scanner) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	var typ, amount, createdAt string
	if err := s.Scan(&e.ID, &e.OwnerID, &typ, &e.Category, &amount, &e.Description, &e.Date, &createdAt); err != nil {
		return nil, err
	}
	e.Type = domain.EntryType(typ)

	var err error
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	if e.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	return &e, nil
}
