package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/task"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task represents a general task in the service layer. Priority is derived
// from the due date, never stored by the caller.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskCreate is the input for creating a task.
type TaskCreate struct {
	UserID      uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
}

// TaskUpdate is a partial edit; nil fields keep their current value.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *string
}

// TaskService handles general task business logic.
type TaskService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(store *storage.Storage) *TaskService {
	return &TaskService{storage: store, now: time.Now}
}

// CreateTask creates a task. Priority is derived from the due date at
// creation and re-derived on every read, so it tightens as the date nears.
func (s *TaskService) CreateTask(ctx context.Context, create TaskCreate) (uuid.UUID, error) {
	return s.storage.Tasks.Insert(ctx, &task.TaskCreate{
		UserID:      create.UserID,
		Title:       create.Title,
		Description: create.Description,
		DueDate:     create.DueDate,
		Priority:    derivePriority(create.DueDate, s.now()),
		Status:      TaskStatusPending,
	})
}

// ListTasks returns all of a user's tasks with freshly derived priorities.
func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]Task, error) {
	rows, err := s.storage.Tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks := make([]Task, len(rows))
	for i, row := range rows {
		tasks[i] = s.taskFromStorage(row)
	}
	return tasks, nil
}

// UpdateTask applies a partial edit. Completing a task stamps CompletedAt;
// moving it back out of completed clears it.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, update TaskUpdate) error {
	row, err := s.storage.Tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrTaskNotFound
	}

	if update.Title != nil {
		row.Title = *update.Title
	}
	if update.Description != nil {
		row.Description = *update.Description
	}
	if update.DueDate != nil {
		row.DueDate = *update.DueDate
	}
	if update.Status != nil && *update.Status != row.Status {
		row.Status = *update.Status
		if row.Status == TaskStatusCompleted {
			row.CompletedAt = sql.NullTime{Time: s.now(), Valid: true}
		} else {
			row.CompletedAt = sql.NullTime{}
		}
	}
	row.Priority = derivePriority(row.DueDate, s.now())

	updated, err := s.storage.Tasks.Update(ctx, row)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.storage.Tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteAllTasks removes every task a user owns and returns the count.
func (s *TaskService) DeleteAllTasks(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.storage.Tasks.DeleteByUser(ctx, userID)
}

// derivePriority maps due-date distance to a priority band. Overdue and
// same-day tasks are urgent; within two days high; within a week medium;
// anything further out low. Distance counts calendar days, not 24h windows.
func derivePriority(dueDate, now time.Time) string {
	due := dueDate.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	days := int(due.Sub(today).Hours() / 24)

	switch {
	case days <= 0:
		return PriorityUrgent
	case days <= 2:
		return PriorityHigh
	case days <= 7:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func (s *TaskService) taskFromStorage(row *task.Task) Task {
	converted := Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		DueDate:     row.DueDate,
		Priority:    derivePriority(row.DueDate, s.now()),
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.CompletedAt.Valid {
		completedAt := row.CompletedAt.Time
		converted.CompletedAt = &completedAt
	}
	return converted
}
