package money

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// DeleteAllMoneyTasksInput is the Huma input for deleting all of a user's
// money tasks.
type DeleteAllMoneyTasksInput struct {
	UserID string `path:"userID" doc:"Owner UUID"`
}

// DeleteAllMoneyTasksOutput is the Huma output for the delete-all endpoint.
type DeleteAllMoneyTasksOutput struct {
	Body struct {
		DeletedCount int64 `json:"deletedCount" doc:"Number of tasks removed"`
	}
}

// moneyTaskBulkDeleter is the interface for deleting all of a user's tasks.
type moneyTaskBulkDeleter interface {
	DeleteAllMoneyTasks(ctx context.Context, userID uuid.UUID) (int64, error)
}

// DeleteAllMoneyTasksHandler handles DELETE /v1/money/tasks/user/{userID}.
type DeleteAllMoneyTasksHandler struct {
	Money moneyTaskBulkDeleter
}

// NewDeleteAllMoneyTasksHandler creates a new DeleteAllMoneyTasksHandler.
func NewDeleteAllMoneyTasksHandler(svc moneyTaskBulkDeleter) *DeleteAllMoneyTasksHandler {
	return &DeleteAllMoneyTasksHandler{Money: svc}
}

// Register registers the delete-all endpoint with the Huma API.
func (h *DeleteAllMoneyTasksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-all-money-tasks",
		Method:      http.MethodDelete,
		Path:        "/v1/money/tasks/user/{userID}",
		Summary:     "Delete all money tasks",
		Description: "Removes every money task the user owns and recomputes each account balance.",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *DeleteAllMoneyTasksHandler) handle(ctx context.Context, input *DeleteAllMoneyTasksInput) (*DeleteAllMoneyTasksOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	count, err := h.Money.DeleteAllMoneyTasks(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete money tasks", err)
	}

	out := &DeleteAllMoneyTasksOutput{}
	out.Body.DeletedCount = count
	return out, nil
}
