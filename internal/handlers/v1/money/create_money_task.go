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

// CreateMoneyTaskBody is the request body for creating a money task.
type CreateMoneyTaskBody struct {
	UserID        string `json:"userID" required:"true" doc:"Owner UUID"`
	BankAccountID string `json:"bankAccountID" required:"true" doc:"Account UUID, must belong to the user"`
	Title         string `json:"title" required:"true" doc:"Task title"`
	Description   string `json:"description,omitempty" doc:"Task description"`
	Amount        string `json:"amount" required:"true" doc:"Decimal amount"`
	Category      string `json:"category" required:"true" doc:"Category, 'income' counts toward the balance"`
	Priority      string `json:"priority,omitempty" doc:"Priority"`
	Status        string `json:"status,omitempty" enum:"pending,in-progress,completed" doc:"Status, defaults to pending"`
	DueDate       string `json:"dueDate,omitempty" doc:"Due date"`
}

// CreateMoneyTaskInput is the Huma input for creating a money task.
type CreateMoneyTaskInput struct {
	Body CreateMoneyTaskBody
}

// CreateMoneyTaskOutput is the Huma output for creating a money task.
type CreateMoneyTaskOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"New task UUID"`
	}
}

// moneyTaskCreator is the interface for creating money tasks.
type moneyTaskCreator interface {
	CreateMoneyTask(ctx context.Context, create service.MoneyTaskCreate) (uuid.UUID, error)
}

// CreateMoneyTaskHandler handles POST /v1/money/tasks.
type CreateMoneyTaskHandler struct {
	Money moneyTaskCreator
}

// NewCreateMoneyTaskHandler creates a new CreateMoneyTaskHandler.
func NewCreateMoneyTaskHandler(svc moneyTaskCreator) *CreateMoneyTaskHandler {
	return &CreateMoneyTaskHandler{Money: svc}
}

// Register registers the create money task endpoint with the Huma API.
func (h *CreateMoneyTaskHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-money-task",
		Method:      http.MethodPost,
		Path:        "/v1/money/tasks",
		Summary:     "Create money task",
		Description: "Creates a money task and recomputes the account's balance in the same transaction.",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *CreateMoneyTaskHandler) handle(ctx context.Context, input *CreateMoneyTaskInput) (*CreateMoneyTaskOutput, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	accountID, err := uuid.FromString(input.Body.BankAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid bankAccountID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	status := input.Body.Status
	if status == "" {
		status = "pending"
	}

	id, err := h.Money.CreateMoneyTask(ctx, service.MoneyTaskCreate{
		UserID:        userID,
		BankAccountID: accountID,
		Title:         input.Body.Title,
		Description:   input.Body.Description,
		Amount:        amount,
		Category:      input.Body.Category,
		Priority:      input.Body.Priority,
		Status:        status,
		DueDate:       input.Body.DueDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, huma.Error404NotFound("bank account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create money task", err)
	}

	out := &CreateMoneyTaskOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}
