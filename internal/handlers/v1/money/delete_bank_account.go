package money

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

// DeleteBankAccountInput is the Huma input for deleting a bank account.
type DeleteBankAccountInput struct {
	AccountID string `path:"accountID" doc:"Account UUID"`
}

// DeleteBankAccountOutput is the Huma output for deleting a bank account.
type DeleteBankAccountOutput struct {
	Status int
}

// bankAccountDeleter is the interface for deleting bank accounts.
type bankAccountDeleter interface {
	DeleteBankAccount(ctx context.Context, id uuid.UUID) error
}

// DeleteBankAccountHandler handles DELETE /v1/money/banks/{accountID}.
type DeleteBankAccountHandler struct {
	Money bankAccountDeleter
}

// NewDeleteBankAccountHandler creates a new DeleteBankAccountHandler.
func NewDeleteBankAccountHandler(svc bankAccountDeleter) *DeleteBankAccountHandler {
	return &DeleteBankAccountHandler{Money: svc}
}

// Register registers the delete bank account endpoint with the Huma API.
func (h *DeleteBankAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-bank-account",
		Method:      http.MethodDelete,
		Path:        "/v1/money/banks/{accountID}",
		Summary:     "Delete bank account",
		Description: "Deletes an account and all of its money tasks.",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *DeleteBankAccountHandler) handle(ctx context.Context, input *DeleteBankAccountInput) (*DeleteBankAccountOutput, error) {
	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	if err := h.Money.DeleteBankAccount(ctx, accountID); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, huma.Error404NotFound("bank account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete bank account", err)
	}
	return &DeleteBankAccountOutput{Status: http.StatusNoContent}, nil
}
