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

// CreateBankAccountBody is the request body for creating a bank account.
type CreateBankAccountBody struct {
	UserID         string `json:"userID" required:"true" doc:"Owner UUID"`
	Name           string `json:"name" required:"true" doc:"Account nickname"`
	BankName       string `json:"bankName" required:"true" doc:"Bank name"`
	AccountNumber  string `json:"accountNumber" required:"true" doc:"Account number, unique"`
	InitialBalance string `json:"initialBalance" required:"true" doc:"Decimal opening balance"`
}

// CreateBankAccountInput is the Huma input for creating a bank account.
type CreateBankAccountInput struct {
	Body CreateBankAccountBody
}

// CreateBankAccountOutput is the Huma output for creating a bank account.
type CreateBankAccountOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"New account UUID"`
	}
}

// bankAccountCreator is the interface for creating bank accounts.
type bankAccountCreator interface {
	CreateBankAccount(ctx context.Context, create service.BankAccountCreate) (uuid.UUID, error)
}

// CreateBankAccountHandler handles POST /v1/money/banks.
type CreateBankAccountHandler struct {
	Money bankAccountCreator
}

// NewCreateBankAccountHandler creates a new CreateBankAccountHandler.
func NewCreateBankAccountHandler(svc bankAccountCreator) *CreateBankAccountHandler {
	return &CreateBankAccountHandler{Money: svc}
}

// Register registers the create bank account endpoint with the Huma API.
func (h *CreateBankAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-bank-account",
		Method:      http.MethodPost,
		Path:        "/v1/money/banks",
		Summary:     "Create bank account",
		Description: "Creates a bank account whose current balance starts at its initial balance.",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *CreateBankAccountHandler) handle(ctx context.Context, input *CreateBankAccountInput) (*CreateBankAccountOutput, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	initialBalance, err := decimal.NewFromString(input.Body.InitialBalance)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid initialBalance", err)
	}

	id, err := h.Money.CreateBankAccount(ctx, service.BankAccountCreate{
		UserID:         userID,
		Name:           input.Body.Name,
		BankName:       input.Body.BankName,
		AccountNumber:  input.Body.AccountNumber,
		InitialBalance: initialBalance,
	})
	if err != nil {
		if errors.Is(err, service.ErrAccountNumberTaken) {
			return nil, huma.Error409Conflict("account number already in use")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create bank account", err)
	}

	out := &CreateBankAccountOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}
