package task

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Task represents a general task record.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
	CompletedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskCreate is the input for creating a new task.
type TaskCreate struct {
	UserID      uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
}

// ITaskTable defines the interface for task storage operations.
// Find methods return (nil, nil) when no row matches.
type ITaskTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Task, error)
	Insert(ctx context.Context, create *TaskCreate) (uuid.UUID, error)
	Update(ctx context.Context, task *Task) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
