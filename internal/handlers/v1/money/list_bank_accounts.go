package money

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/logging"
	"github.com/keller-networks/pms-server/internal/service"
)

// ListBankAccountsInput is the Huma input for listing a user's bank accounts.
type ListBankAccountsInput struct {
	UserID string `path:"userID" doc:"Owner UUID"`
}

// ListBankAccountsOutput is the Huma output for listing bank accounts.
type ListBankAccountsOutput struct {
	Body struct {
		Accounts []BankAccount `json:"accounts" doc:"The user's bank accounts"`
	}
}

// bankAccountLister is the interface for listing bank accounts.
type bankAccountLister interface {
	ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]service.BankAccount, error)
}

// ListBankAccountsHandler handles GET /v1/money/banks/user/{userID}.
type ListBankAccountsHandler struct {
	Money bankAccountLister
}

// NewListBankAccountsHandler creates a new ListBankAccountsHandler.
func NewListBankAccountsHandler(svc bankAccountLister) *ListBankAccountsHandler {
	return &ListBankAccountsHandler{Money: svc}
}

// Register registers the list bank accounts endpoint with the Huma API.
func (h *ListBankAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-bank-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/money/banks/user/{userID}",
		Summary:     "List bank accounts",
		Description: "Returns the user's bank accounts with reconciled balances.",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *ListBankAccountsHandler) handle(ctx context.Context, input *ListBankAccountsInput) (*ListBankAccountsOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBankAccountsMs")
	}
	accounts, err := h.Money.ListBankAccounts(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list bank accounts", err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	out := &ListBankAccountsOutput{}
	out.Body.Accounts = make([]BankAccount, len(accounts))
	for i, account := range accounts {
		out.Body.Accounts[i] = bankAccountToAPI(account)
	}
	return out, nil
}
