package todo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage/sqlexec"
)

// TodosTable provides access to the todos table.
type TodosTable struct {
	exec sqlexec.Queryer
}

// Ensure TodosTable implements ITodoTable at compile time.
var _ ITodoTable = (*TodosTable)(nil)

// NewTodosTable creates a TodosTable over the given executor.
func NewTodosTable(exec sqlexec.Queryer) *TodosTable {
	return &TodosTable{exec: exec}
}

const todoColumns = `id, user_id, content, color, is_completed, completed_at, created_at, updated_at`

func scanTodo(row interface{ Scan(...any) error }) (*Todo, error) {
	var td Todo
	err := row.Scan(
		&td.ID, &td.UserID, &td.Content, &td.Color, &td.IsCompleted,
		&td.CompletedAt, &td.CreatedAt, &td.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &td, nil
}

// FindByID retrieves a todo by primary key.
func (t *TodosTable) FindByID(ctx context.Context, id uuid.UUID) (*Todo, error) {
	row, err := scanTodo(t.exec.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// ListByUser returns all todos for a user, newest first.
func (t *TodosTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Todo, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Todo
	for rows.Next() {
		td, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, td)
	}
	return result, rows.Err()
}

// Insert creates a new todo and returns its generated ID.
func (t *TodosTable) Insert(ctx context.Context, create *TodoCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRowContext(ctx,
		`INSERT INTO todos (user_id, content, color) VALUES ($1, $2, $3) RETURNING id`,
		create.UserID, create.Content, create.Color,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update writes all mutable columns of a todo. Returns false when no row matched.
func (t *TodosTable) Update(ctx context.Context, todo *Todo) (bool, error) {
	result, err := t.exec.ExecContext(ctx,
		`UPDATE todos
		 SET content = $2, color = $3, is_completed = $4, completed_at = $5, updated_at = now()
		 WHERE id = $1`,
		todo.ID, todo.Content, todo.Color, todo.IsCompleted, todo.CompletedAt)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a todo. Returns false when no row matched.
func (t *TodosTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
