package todo

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Todo represents a todo record.
type Todo struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Content     string
	Color       string
	IsCompleted bool
	CompletedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoCreate is the input for creating a new todo.
type TodoCreate struct {
	UserID  uuid.UUID
	Content string
	Color   string
}

// ITodoTable defines the interface for todo storage operations.
// Find methods return (nil, nil) when no row matches.
type ITodoTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Todo, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Todo, error)
	Insert(ctx context.Context, create *TodoCreate) (uuid.UUID, error)
	Update(ctx context.Context, todo *Todo) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
