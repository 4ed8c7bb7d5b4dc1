package money

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/export"
	"github.com/keller-networks/pms-server/internal/service"
)

// ExportBankAccountInput is the Huma input for exporting an account as CSV.
type ExportBankAccountInput struct {
	AccountID string `path:"accountID" doc:"Account UUID"`
}

// ExportBankAccountOutput is the Huma output for exporting an account.
type ExportBankAccountOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// bankAccountExporter is the interface for reading an account and its tasks.
type bankAccountExporter interface {
	GetBankAccount(ctx context.Context, id uuid.UUID) (*service.BankAccount, error)
	ListAccountMoneyTasks(ctx context.Context, accountID uuid.UUID) ([]service.MoneyTask, error)
}

// ExportBankAccountHandler handles GET /v1/money/banks/{accountID}/export.
type ExportBankAccountHandler struct {
	Money bankAccountExporter
}

// NewExportBankAccountHandler creates a new ExportBankAccountHandler.
func NewExportBankAccountHandler(svc bankAccountExporter) *ExportBankAccountHandler {
	return &ExportBankAccountHandler{Money: svc}
}

// Register registers the export endpoint with the Huma API.
func (h *ExportBankAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-bank-account",
		Method:      http.MethodGet,
		Path:        "/v1/money/banks/{accountID}/export",
		Summary:     "Export bank account CSV",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *ExportBankAccountHandler) handle(ctx context.Context, input *ExportBankAccountInput) (*ExportBankAccountOutput, error) {
	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	account, err := h.Money.GetBankAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, huma.Error404NotFound("bank account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch bank account", err)
	}

	tasks, err := h.Money.ListAccountMoneyTasks(ctx, accountID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch money tasks", err)
	}

	csvBytes, err := export.BankAccountCSV(*account, tasks)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build export", err)
	}

	return &ExportBankAccountOutput{
		ContentType: "text/csv",
		Body:        csvBytes,
	}, nil
}
