package money

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/keller-networks/pms-server/internal/service"
)

// UpdateMoneyTaskBody is the request body for updating a money task. Absent
// fields keep their current value.
type UpdateMoneyTaskBody struct {
	BankAccountID *string `json:"bankAccountID,omitempty" doc:"Move the task to another of the user's accounts"`
	Title         *string `json:"title,omitempty" doc:"Task title"`
	Description   *string `json:"description,omitempty" doc:"Task description"`
	Amount        *string `json:"amount,omitempty" doc:"Decimal amount"`
	Category      *string `json:"category,omitempty" doc:"Category"`
	Priority      *string `json:"priority,omitempty" doc:"Priority"`
	Status        *string `json:"status,omitempty" enum:"pending,in-progress,completed" doc:"Status"`
	DueDate       *string `json:"dueDate,omitempty" doc:"Due date"`
}

// UpdateMoneyTaskInput is the Huma input for updating a money task.
type UpdateMoneyTaskInput struct {
	TaskID string `path:"taskID" doc:"Task UUID"`
	Body   UpdateMoneyTaskBody
}

// UpdateMoneyTaskOutput is the Huma output for updating a money task.
type UpdateMoneyTaskOutput struct {
	Status int
}

// moneyTaskUpdater is the interface for updating money tasks.
type moneyTaskUpdater interface {
	UpdateMoneyTask(ctx context.Context, id uuid.UUID, update service.MoneyTaskUpdate) error
}

// UpdateMoneyTaskHandler handles PATCH /v1/money/tasks/{taskID}.
type UpdateMoneyTaskHandler struct {
	Money moneyTaskUpdater
}

// NewUpdateMoneyTaskHandler creates a new UpdateMoneyTaskHandler.
func NewUpdateMoneyTaskHandler(svc moneyTaskUpdater) *UpdateMoneyTaskHandler {
	return &UpdateMoneyTaskHandler{Money: svc}
}

// Register registers the update money task endpoint with the Huma API.
func (h *UpdateMoneyTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-money-task",
		Method:      http.MethodPatch,
		Path:        "/v1/money/tasks/{taskID}",
		Summary:     "Update money task",
		Description: "Applies a partial edit and recomputes every affected account balance.",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *UpdateMoneyTaskHandler) handle(ctx context.Context, input *UpdateMoneyTaskInput) (*UpdateMoneyTaskOutput, error) {
	taskID, err := uuid.FromString(input.TaskID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid taskID", err)
	}

	update := service.MoneyTaskUpdate{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Category:    input.Body.Category,
		Priority:    input.Body.Priority,
		Status:      input.Body.Status,
		DueDate:     input.Body.DueDate,
	}

	if input.Body.BankAccountID != nil {
		accountID, err := uuid.FromString(*input.Body.BankAccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid bankAccountID", err)
		}
		update.BankAccountID = &accountID
	}
	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		update.Amount = &amount
	}

	if err := h.Money.UpdateMoneyTask(ctx, taskID, update); err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			return nil, huma.Error404NotFound("money task not found")
		case errors.Is(err, service.ErrAccountNotFound):
			return nil, huma.Error404NotFound("bank account not found")
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to update money task", err)
		}
	}
	return &UpdateMoneyTaskOutput{Status: http.StatusNoContent}, nil
}
