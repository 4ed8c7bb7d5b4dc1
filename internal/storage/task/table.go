package task

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage/sqlexec"
)

// TasksTable provides access to the tasks table.
type TasksTable struct {
	exec sqlexec.Queryer
}

// Ensure TasksTable implements ITaskTable at compile time.
var _ ITaskTable = (*TasksTable)(nil)

// NewTasksTable creates a TasksTable over the given executor.
func NewTasksTable(exec sqlexec.Queryer) *TasksTable {
	return &TasksTable{exec: exec}
}

const taskColumns = `id, user_id, title, description, due_date, priority, status, completed_at, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*Task, error) {
	var t Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate,
		&t.Priority, &t.Status, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByID retrieves a task by primary key.
func (t *TasksTable) FindByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	row, err := scanTask(t.exec.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// ListByUser returns all tasks for a user, soonest due date first.
func (t *TasksTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Task, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY due_date ASC, created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	return result, rows.Err()
}

// Insert creates a new task and returns its generated ID.
func (t *TasksTable) Insert(ctx context.Context, create *TaskCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRowContext(ctx,
		`INSERT INTO tasks (user_id, title, description, due_date, priority, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		create.UserID, create.Title, create.Description, create.DueDate,
		create.Priority, create.Status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update writes all mutable columns of a task. Returns false when no row matched.
func (t *TasksTable) Update(ctx context.Context, task *Task) (bool, error) {
	result, err := t.exec.ExecContext(ctx,
		`UPDATE tasks
		 SET title = $2, description = $3, due_date = $4, priority = $5,
		     status = $6, completed_at = $7, updated_at = now()
		 WHERE id = $1`,
		task.ID, task.Title, task.Description, task.DueDate,
		task.Priority, task.Status, task.CompletedAt)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a task. Returns false when no row matched.
func (t *TasksTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteByUser removes all of a user's tasks and returns the count.
func (t *TasksTable) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
