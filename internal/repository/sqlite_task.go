package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/alexanderramin/lifetrack/internal/domain"
)

const taskColumns = `id, owner_id, title, priority, status, date, is_daily, created_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.OwnerID,
		t.Title,
		string(t.Priority),
		string(t.Status),
		t.Date,
		boolToInt(t.IsDaily),
		formatTimestamp(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ? AND id = ?`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		return nil, notFoundOr(err, "task")
	}
	return t, nil
}

// ListByOwner returns the owner's tasks, most recently created first.
func (r *SQLiteTaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ?
		ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) UpdateStatus(ctx context.Context, ownerID, id string, status domain.TaskStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ? WHERE owner_id = ? AND id = ?`,
		string(status), ownerID, id)
	if err != nil {
		return fmt.Errorf("updating task status: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE owner_id = ? AND id = ?`, ownerID, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task")
}

func scanTask(s scanner) (*domain.Task, error) {
	var t domain.Task
	var priority, status, createdAt string
	var isDaily int
	if err := s.Scan(&t.ID, &t.OwnerID, &t.Title, &priority, &status, &t.Date, &isDaily, &createdAt); err != nil {
		return nil, err
	}
	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)
	t.IsDaily = intToBool(isDaily)

	var err error
	if t.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	return &t, nil
}
