// Package todo exposes the todo endpoints.
package todo

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

// todoService is the slice of TodoService the handlers need.
type todoService interface {
	CreateTodo(ctx context.Context, create service.TodoCreate) (uuid.UUID, error)
	ListTodos(ctx context.Context, userID uuid.UUID) ([]service.Todo, error)
	UpdateTodo(ctx context.Context, id uuid.UUID, update service.TodoUpdate) error
	DeleteTodo(ctx context.Context, id uuid.UUID) error
}

// Handler handles the /v1/todos endpoints.
type Handler struct {
	Todos todoService
}

// NewHandler creates a new todo Handler.
func NewHandler(svc todoService) *Handler {
	return &Handler{Todos: svc}
}

// Register registers the todo endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-todo",
		Method:      http.MethodPost,
		Path:        "/v1/todos",
		Summary:     "Create todo",
		Tags:        []string{"Todos"},
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "list-todos",
		Method:      http.MethodGet,
		Path:        "/v1/todos/user/{userID}",
		Summary:     "List todos",
		Tags:        []string{"Todos"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "update-todo",
		Method:      http.MethodPatch,
		Path:        "/v1/todos/{todoID}",
		Summary:     "Update todo",
		Tags:        []string{"Todos"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-todo",
		Method:      http.MethodDelete,
		Path:        "/v1/todos/{todoID}",
		Summary:     "Delete todo",
		Tags:        []string{"Todos"},
	}, h.delete)
}

// Todo is the API response model for a todo.
type Todo struct {
	ID          string `json:"id" doc:"Todo UUID"`
	UserID      string `json:"userID" doc:"Owner UUID"`
	Content     string `json:"content" doc:"Todo text"`
	Color       string `json:"color,omitempty" doc:"Display color"`
	IsCompleted bool   `json:"isCompleted" doc:"Completion flag"`
	CompletedAt string `json:"completedAt,omitempty" doc:"RFC3339 completion time"`
}

// CreateTodoInput is the Huma input for creating a todo.
type CreateTodoInput struct {
	Body struct {
		UserID  string `json:"userID" required:"true" doc:"Owner UUID"`
		Content string `json:"content" required:"true" doc:"Todo text"`
		Color   string `json:"color,omitempty" doc:"Display color"`
	}
}

// CreateTodoOutput is the Huma output for creating a todo.
type CreateTodoOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"New todo UUID"`
	}
}

func (h *Handler) create(ctx context.Context, input *CreateTodoInput) (*CreateTodoOutput, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	id, err := h.Todos.CreateTodo(ctx, service.TodoCreate{
		UserID:  userID,
		Content: input.Body.Content,
		Color:   input.Body.Color,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create todo", err)
	}

	out := &CreateTodoOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}

// ListTodosInput is the Huma input for listing todos.
type ListTodosInput struct {
	UserID string `path:"userID" doc:"Owner UUID"`
}

// ListTodosOutput is the Huma output for listing todos.
type ListTodosOutput struct {
	Body struct {
		Todos []Todo `json:"todos" doc:"The user's todos"`
	}
}

func (h *Handler) list(ctx context.Context, input *ListTodosInput) (*ListTodosOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	todos, err := h.Todos.ListTodos(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list todos", err)
	}

	out := &ListTodosOutput{}
	out.Body.Todos = make([]Todo, len(todos))
	for i, item := range todos {
		converted := Todo{
			ID:          item.ID.String(),
			UserID:      item.UserID.String(),
			Content:     item.Content,
			Color:       item.Color,
			IsCompleted: item.IsCompleted,
		}
		if item.CompletedAt != nil {
			converted.CompletedAt = item.CompletedAt.Format(time.RFC3339)
		}
		out.Body.Todos[i] = converted
	}
	return out, nil
}

// UpdateTodoInput is the Huma input for updating a todo. Absent fields keep
// their current value.
type UpdateTodoInput struct {
	TodoID string `path:"todoID" doc:"Todo UUID"`
	Body   struct {
		Content     *string `json:"content,omitempty" doc:"Todo text"`
		Color       *string `json:"color,omitempty" doc:"Display color"`
		IsCompleted *bool   `json:"isCompleted,omitempty" doc:"Completion flag"`
	}
}

// UpdateTodoOutput is the Huma output for updating a todo.
type UpdateTodoOutput struct {
	Status int
}

func (h *Handler) update(ctx context.Context, input *UpdateTodoInput) (*UpdateTodoOutput, error) {
	todoID, err := uuid.FromString(input.TodoID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid todoID", err)
	}

	err = h.Todos.UpdateTodo(ctx, todoID, service.TodoUpdate{
		Content:     input.Body.Content,
		Color:       input.Body.Color,
		IsCompleted: input.Body.IsCompleted,
	})
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			return nil, huma.Error404NotFound("todo not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update todo", err)
	}
	return &UpdateTodoOutput{Status: http.StatusNoContent}, nil
}

// DeleteTodoInput is the Huma input for deleting a todo.
type DeleteTodoInput struct {
	TodoID string `path:"todoID" doc:"Todo UUID"`
}

// DeleteTodoOutput is the Huma output for deleting a todo.
type DeleteTodoOutput struct {
	Status int
}

func (h *Handler) delete(ctx context.Context, input *DeleteTodoInput) (*DeleteTodoOutput, error) {
	todoID, err := uuid.FromString(input.TodoID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid todoID", err)
	}

	if err := h.Todos.DeleteTodo(ctx, todoID); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			return nil, huma.Error404NotFound("todo not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete todo", err)
	}
	return &DeleteTodoOutput{Status: http.StatusNoContent}, nil
}
