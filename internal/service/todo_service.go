package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/todo"
)

// Todo represents a todo in the service layer.
type Todo struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Content     string
	Color       string
	IsCompleted bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoCreate is the input for creating a todo.
type TodoCreate struct {
	UserID  uuid.UUID
	Content string
	Color   string
}

// TodoUpdate is a partial edit; nil fields keep their current value.
type TodoUpdate struct {
	Content     *string
	Color       *string
	IsCompleted *bool
}

// TodoService handles todo business logic.
type TodoService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewTodoService creates a new TodoService.
func NewTodoService(store *storage.Storage) *TodoService {
	return &TodoService{storage: store, now: time.Now}
}

// CreateTodo creates a todo.
func (s *TodoService) CreateTodo(ctx context.Context, create TodoCreate) (uuid.UUID, error) {
	return s.storage.Todos.Insert(ctx, &todo.TodoCreate{
		UserID:  create.UserID,
		Content: create.Content,
		Color:   create.Color,
	})
}

// ListTodos returns all of a user's todos.
func (s *TodoService) ListTodos(ctx context.Context, userID uuid.UUID) ([]Todo, error) {
	rows, err := s.storage.Todos.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	todos := make([]Todo, len(rows))
	for i, row := range rows {
		todos[i] = todoFromStorage(row)
	}
	return todos, nil
}

// UpdateTodo applies a partial edit. Completing stamps CompletedAt,
// un-completing clears it.
func (s *TodoService) UpdateTodo(ctx context.Context, id uuid.UUID, update TodoUpdate) error {
	row, err := s.storage.Todos.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrTodoNotFound
	}

	if update.Content != nil {
		row.Content = *update.Content
	}
	if update.Color != nil {
		row.Color = *update.Color
	}
	if update.IsCompleted != nil && *update.IsCompleted != row.IsCompleted {
		row.IsCompleted = *update.IsCompleted
		if row.IsCompleted {
			row.CompletedAt = sql.NullTime{Time: s.now(), Valid: true}
		} else {
			row.CompletedAt = sql.NullTime{}
		}
	}

	updated, err := s.storage.Todos.Update(ctx, row)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTodoNotFound
	}
	return nil
}

// DeleteTodo removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.storage.Todos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTodoNotFound
	}
	return nil
}

func todoFromStorage(row *todo.Todo) Todo {
	converted := Todo{
		ID:          row.ID,
		UserID:      row.UserID,
		Content:     row.Content,
		Color:       row.Color,
		IsCompleted: row.IsCompleted,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.CompletedAt.Valid {
		completedAt := row.CompletedAt.Time
		converted.CompletedAt = &completedAt
	}
	return converted
}
