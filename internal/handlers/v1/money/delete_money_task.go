package money

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

// DeleteMoneyTaskInput is the Huma input for deleting a money task.
type DeleteMoneyTaskInput struct {
	TaskID string `path:"taskID" doc:"Task UUID"`
}

// DeleteMoneyTaskOutput is the Huma output for deleting a money task.
type DeleteMoneyTaskOutput struct {
	Status int
}

// moneyTaskDeleter is the interface for deleting money tasks.
type moneyTaskDeleter interface {
	DeleteMoneyTask(ctx context.Context, id uuid.UUID) error
}

// DeleteMoneyTaskHandler handles DELETE /v1/money/tasks/{taskID}.
type DeleteMoneyTaskHandler struct {
	Money moneyTaskDeleter
}

// NewDeleteMoneyTaskHandler creates a new DeleteMoneyTaskHandler.
func NewDeleteMoneyTaskHandler(svc moneyTaskDeleter) *DeleteMoneyTaskHandler {
	return &DeleteMoneyTaskHandler{Money: svc}
}

// Register registers the delete money task endpoint with the Huma API.
func (h *DeleteMoneyTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-money-task",
		Method:      http.MethodDelete,
		Path:        "/v1/money/tasks/{taskID}",
		Summary:     "Delete money task",
		Description: "Deletes a task and recomputes its account's balance.",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *DeleteMoneyTaskHandler) handle(ctx context.Context, input *DeleteMoneyTaskInput) (*DeleteMoneyTaskOutput, error) {
	taskID, err := uuid.FromString(input.TaskID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid taskID", err)
	}

	if err := h.Money.DeleteMoneyTask(ctx, taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return nil, huma.Error404NotFound("money task not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete money task", err)
	}
	return &DeleteMoneyTaskOutput{Status: http.StatusNoContent}, nil
}
