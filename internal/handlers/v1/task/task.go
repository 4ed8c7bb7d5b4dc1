// Package task exposes the general task endpoints.
package task

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

// taskService is the slice of TaskService the handlers need.
type taskService interface {
	CreateTask(ctx context.Context, create service.TaskCreate) (uuid.UUID, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]service.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, update service.TaskUpdate) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
	DeleteAllTasks(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Handler handles the /v1/tasks endpoints.
type Handler struct {
	Tasks taskService
}

// NewHandler creates a new task Handler.
func NewHandler(svc taskService) *Handler {
	return &Handler{Tasks: svc}
}

// Register registers the task endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-task",
		Method:      http.MethodPost,
		Path:        "/v1/tasks",
		Summary:     "Create task",
		Description: "Creates a task; priority is derived from the due date.",
		Tags:        []string{"Tasks"},
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "list-tasks",
		Method:      http.MethodGet,
		Path:        "/v1/tasks/user/{userID}",
		Summary:     "List tasks",
		Tags:        []string{"Tasks"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "update-task",
		Method:      http.MethodPatch,
		Path:        "/v1/tasks/{taskID}",
		Summary:     "Update task",
		Tags:        []string{"Tasks"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-task",
		Method:      http.MethodDelete,
		Path:        "/v1/tasks/{taskID}",
		Summary:     "Delete task",
		Tags:        []string{"Tasks"},
	}, h.delete)
	huma.Register(api, huma.Operation{
		OperationID: "delete-all-tasks",
		Method:      http.MethodDelete,
		Path:        "/v1/tasks/user/{userID}",
		Summary:     "Delete all tasks",
		Description: "Removes every task the user owns.",
		Tags:        []string{"Tasks"},
	}, h.deleteAll)
}

// Task is the API response model for a task.
type Task struct {
	ID          string `json:"id" doc:"Task UUID"`
	UserID      string `json:"userID" doc:"Owner UUID"`
	Title       string `json:"title" doc:"Task title"`
	Description string `json:"description,omitempty" doc:"Task description"`
	DueDate     string `json:"dueDate" doc:"RFC3339 due date"`
	Priority    string `json:"priority" doc:"Derived from due-date distance"`
	Status      string `json:"status" doc:"pending, in-progress or completed"`
	CompletedAt string `json:"completedAt,omitempty" doc:"RFC3339 completion time"`
}

func taskToAPI(t service.Task) Task {
	converted := Task{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.Format(time.RFC3339),
		Priority:    t.Priority,
		Status:      t.Status,
	}
	if t.CompletedAt != nil {
		converted.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return converted
}

// CreateTaskInput is the Huma input for creating a task.
type CreateTaskInput struct {
	Body struct {
		UserID      string `json:"userID" required:"true" doc:"Owner UUID"`
		Title       string `json:"title" required:"true" doc:"Task title"`
		Description string `json:"description,omitempty" doc:"Task description"`
		DueDate     string `json:"dueDate" required:"true" format:"date-time" doc:"RFC3339 due date"`
	}
}

// CreateTaskOutput is the Huma output for creating a task.
type CreateTaskOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"New task UUID"`
	}
}

func (h *Handler) create(ctx context.Context, input *CreateTaskInput) (*CreateTaskOutput, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	dueDate, err := time.Parse(time.RFC3339, input.Body.DueDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
	}

	id, err := h.Tasks.CreateTask(ctx, service.TaskCreate{
		UserID:      userID,
		Title:       input.Body.Title,
		Description: input.Body.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create task", err)
	}

	out := &CreateTaskOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}

// ListTasksInput is the Huma input for listing tasks.
type ListTasksInput struct {
	UserID string `path:"userID" doc:"Owner UUID"`
}

// ListTasksOutput is the Huma output for listing tasks.
type ListTasksOutput struct {
	Body struct {
		Tasks []Task `json:"tasks" doc:"The user's tasks"`
	}
}

func (h *Handler) list(ctx context.Context, input *ListTasksInput) (*ListTasksOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	tasks, err := h.Tasks.ListTasks(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list tasks", err)
	}

	out := &ListTasksOutput{}
	out.Body.Tasks = make([]Task, len(tasks))
	for i, t := range tasks {
		out.Body.Tasks[i] = taskToAPI(t)
	}
	return out, nil
}

// UpdateTaskInput is the Huma input for updating a task. Absent fields keep
// their current value.
type UpdateTaskInput struct {
	TaskID string `path:"taskID" doc:"Task UUID"`
	Body   struct {
		Title       *string `json:"title,omitempty" doc:"Task title"`
		Description *string `json:"description,omitempty" doc:"Task description"`
		DueDate     *string `json:"dueDate,omitempty" format:"date-time" doc:"RFC3339 due date"`
		Status      *string `json:"status,omitempty" enum:"pending,in-progress,completed" doc:"Status"`
	}
}

// UpdateTaskOutput is the Huma output for updating a task.
type UpdateTaskOutput struct {
	Status int
}

func (h *Handler) update(ctx context.Context, input *UpdateTaskInput) (*UpdateTaskOutput, error) {
	taskID, err := uuid.FromString(input.TaskID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid taskID", err)
	}

	update := service.TaskUpdate{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Status:      input.Body.Status,
	}
	if input.Body.DueDate != nil {
		dueDate, err := time.Parse(time.RFC3339, *input.Body.DueDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
		}
		update.DueDate = &dueDate
	}

	if err := h.Tasks.UpdateTask(ctx, taskID, update); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return nil, huma.Error404NotFound("task not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update task", err)
	}
	return &UpdateTaskOutput{Status: http.StatusNoContent}, nil
}

// DeleteTaskInput is the Huma input for deleting a task.
type DeleteTaskInput struct {
	TaskID string `path:"taskID" doc:"Task UUID"`
}

// DeleteTaskOutput is the Huma output for deleting a task.
type DeleteTaskOutput struct {
	Status int
}

func (h *Handler) delete(ctx context.Context, input *DeleteTaskInput) (*DeleteTaskOutput, error) {
	taskID, err := uuid.FromString(input.TaskID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid taskID", err)
	}

	if err := h.Tasks.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return nil, huma.Error404NotFound("task not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete task", err)
	}
	return &DeleteTaskOutput{Status: http.StatusNoContent}, nil
}

// DeleteAllTasksInput is the Huma input for deleting all of a user's tasks.
type DeleteAllTasksInput struct {
	UserID string `path:"userID" doc:"Owner UUID"`
}

// DeleteAllTasksOutput is the Huma output for the delete-all endpoint.
type DeleteAllTasksOutput struct {
	Body struct {
		DeletedCount int64 `json:"deletedCount" doc:"Number of tasks removed"`
	}
}

func (h *Handler) deleteAll(ctx context.Context, input *DeleteAllTasksInput) (*DeleteAllTasksOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	count, err := h.Tasks.DeleteAllTasks(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete tasks", err)
	}

	out := &DeleteAllTasksOutput{}
	out.Body.DeletedCount = count
	return out, nil
}
