package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/task"
)

func newTestTaskService(now time.Time) (*TaskService, *mockTaskTable) {
	tasks := &mockTaskTable{}
	svc := NewTaskService(&storage.Storage{Tasks: tasks})
	svc.now = func() time.Time { return now }
	return svc, tasks
}

func TestDerivePriority(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		dueDate  time.Time
		expected string
	}{
		{"overdue", now.AddDate(0, 0, -3), PriorityUrgent},
		{"due today", now, PriorityUrgent},
		{"due tomorrow", now.AddDate(0, 0, 1), PriorityHigh},
		{"due in two days", now.AddDate(0, 0, 2), PriorityHigh},
		{"due in three days", now.AddDate(0, 0, 3), PriorityMedium},
		{"due in a week", now.AddDate(0, 0, 7), PriorityMedium},
		{"due in eight days", now.AddDate(0, 0, 8), PriorityLow},
		{"due next month", now.AddDate(0, 1, 0), PriorityLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, derivePriority(tc.dueDate, now))
		})
	}
}

func TestCreateTask_DerivesPriorityAndStartsPending(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, tasks := newTestTaskService(now)

	expectedID := uuid.Must(uuid.NewV4())
	tasks.On("Insert", mock.Anything, mock.MatchedBy(func(c *task.TaskCreate) bool {
		return c.Priority == PriorityHigh && c.Status == TaskStatusPending
	})).Return(expectedID, nil)

	id, err := svc.CreateTask(context.Background(), TaskCreate{
		UserID:  uuid.Must(uuid.NewV4()),
		Title:   "Renew passport",
		DueDate: now.AddDate(0, 0, 1),
	})

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
	tasks.AssertExpectations(t)
}

func TestListTasks_RederivesPriorityOnRead(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, tasks := newTestTaskService(now)

	userID := uuid.Must(uuid.NewV4())
	tasks.On("ListByUser", mock.Anything, userID).Return([]*task.Task{
		{
			ID:       uuid.Must(uuid.NewV4()),
			UserID:   userID,
			Title:    "File taxes",
			DueDate:  now.AddDate(0, 0, -1),
			Priority: PriorityLow, // stored at creation, now stale
			Status:   TaskStatusPending,
		},
	}, nil)

	listed, err := svc.ListTasks(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, PriorityUrgent, listed[0].Priority)
}

func TestUpdateTask_CompletionStampsCompletedAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, tasks := newTestTaskService(now)

	taskID := uuid.Must(uuid.NewV4())
	tasks.On("FindByID", mock.Anything, taskID).Return(&task.Task{
		ID:      taskID,
		DueDate: now.AddDate(0, 0, 5),
		Status:  TaskStatusInProgress,
	}, nil)
	tasks.On("Update", mock.Anything, mock.MatchedBy(func(row *task.Task) bool {
		return row.Status == TaskStatusCompleted &&
			row.CompletedAt.Valid &&
			row.CompletedAt.Time.Equal(now)
	})).Return(true, nil)

	status := TaskStatusCompleted
	err := svc.UpdateTask(context.Background(), taskID, TaskUpdate{Status: &status})

	assert.NoError(t, err)
	tasks.AssertExpectations(t)
}

func TestUpdateTask_ReopeningClearsCompletedAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, tasks := newTestTaskService(now)

	taskID := uuid.Must(uuid.NewV4())
	completed := &task.Task{
		ID:      taskID,
		DueDate: now.AddDate(0, 0, 5),
		Status:  TaskStatusCompleted,
	}
	completed.CompletedAt.Time = now.AddDate(0, 0, -1)
	completed.CompletedAt.Valid = true

	tasks.On("FindByID", mock.Anything, taskID).Return(completed, nil)
	tasks.On("Update", mock.Anything, mock.MatchedBy(func(row *task.Task) bool {
		return row.Status == TaskStatusPending && !row.CompletedAt.Valid
	})).Return(true, nil)

	status := TaskStatusPending
	err := svc.UpdateTask(context.Background(), taskID, TaskUpdate{Status: &status})

	assert.NoError(t, err)
	tasks.AssertExpectations(t)
}

func TestUpdateTask_NotFound(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, tasks := newTestTaskService(now)

	taskID := uuid.Must(uuid.NewV4())
	tasks.On("FindByID", mock.Anything, taskID).Return(nil, nil)

	title := "anything"
	err := svc.UpdateTask(context.Background(), taskID, TaskUpdate{Title: &title})

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteAllTasks_ReturnsCount(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, tasks := newTestTaskService(now)

	userID := uuid.Must(uuid.NewV4())
	tasks.On("DeleteByUser", mock.Anything, userID).Return(int64(4), nil)

	count, err := svc.DeleteAllTasks(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
	tasks.AssertExpectations(t)
}
