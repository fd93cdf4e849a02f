package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/types"
)

const taskColumns = `id, user_id, title, description, due_date, status, priority, created_at, updated_at`

func scanTask(row pgx.Row) (*types.Task, error) {
	var t types.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate,
		&t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask inserts a dashboard task for the user
func (db *DB) CreateTask(ctx context.Context, userID uuid.UUID, req *types.TaskRequest) (*types.Task, error) {
	t, err := scanTask(db.pool.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, description, due_date, status, priority)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+taskColumns,
		userID, req.Title, req.Description, req.DueDate, req.Status, req.Priority,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// ListTasks returns the user's tasks, optionally filtered by status
func (db *DB) ListTasks(ctx context.Context, userID uuid.UUID, status string) ([]types.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY due_date ASC NULLS LAST, created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask replaces a task's fields. Returns nil, nil when not found.
func (db *DB) UpdateTask(ctx context.Context, id, userID uuid.UUID, req *types.TaskRequest) (*types.Task, error) {
	t, err := scanTask(db.pool.QueryRow(ctx,
		`UPDATE tasks SET title = $1, description = $2, due_date = $3, status = $4, priority = $5, updated_at = NOW()
		 WHERE id = $6 AND user_id = $7
		 RETURNING `+taskColumns,
		req.Title, req.Description, req.DueDate, req.Status, req.Priority, id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return t, nil
}

// DeleteTask removes a task. Reports whether a row was deleted.
func (db *DB) DeleteTask(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountTasksByStatus returns the number of tasks per status for a user
func (db *DB) CountTasksByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM tasks WHERE user_id = $1 GROUP BY status`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{
		string(types.TaskPending):    0,
		string(types.TaskInProgress): 0,
		string(types.TaskCompleted):  0,
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan task count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task counts: %w", err)
	}
	return counts, nil
}
