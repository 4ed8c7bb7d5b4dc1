package money

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

// ReconciliationInput is the Huma input for the reconciliation report.
type ReconciliationInput struct {
	AccountID string `path:"accountID" doc:"Account UUID"`
}

// ReconciliationBody is the response body for the reconciliation report.
type ReconciliationBody struct {
	Account           BankAccount `json:"account" doc:"The account under report"`
	TaskCount         int         `json:"taskCount" doc:"Number of money tasks on the account"`
	StoredBalance     string      `json:"storedBalance" doc:"Balance currently persisted on the account row"`
	InitialBalance    string      `json:"initialBalance" doc:"Decimal opening balance"`
	CompletedIncome   string      `json:"completedIncome" doc:"Sum of completed income tasks"`
	CompletedExpense  string      `json:"completedExpense" doc:"Sum of completed non-income tasks"`
	RecomputedBalance string      `json:"recomputedBalance" doc:"initial + income - expense over the full task set"`
	InSync            bool        `json:"inSync" doc:"Whether the stored balance matches the recomputation"`
}

// ReconciliationOutput is the Huma output for the reconciliation report.
type ReconciliationOutput struct {
	Body ReconciliationBody
}

// reconciler is the interface for producing reconciliation reports.
type reconciler interface {
	Reconcile(ctx context.Context, accountID uuid.UUID) (*service.ReconciliationReport, error)
}

// ReconciliationHandler handles GET /v1/money/banks/{accountID}/reconciliation.
type ReconciliationHandler struct {
	Money reconciler
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(svc reconciler) *ReconciliationHandler {
	return &ReconciliationHandler{Money: svc}
}

// Register registers the reconciliation endpoint with the Huma API.
func (h *ReconciliationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reconcile-bank-account",
		Method:      http.MethodGet,
		Path:        "/v1/money/banks/{accountID}/reconciliation",
		Summary:     "Reconciliation report",
		Description: "Compares the stored balance against a fresh recomputation over the account's full task set.",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *ReconciliationHandler) handle(ctx context.Context, input *ReconciliationInput) (*ReconciliationOutput, error) {
	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	report, err := h.Money.Reconcile(ctx, accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, huma.Error404NotFound("bank account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to reconcile", err)
	}

	return &ReconciliationOutput{Body: ReconciliationBody{
		Account:           bankAccountToAPI(report.Account),
		TaskCount:         report.TaskCount,
		StoredBalance:     report.StoredBalance.String(),
		InitialBalance:    report.InitialBalance.String(),
		CompletedIncome:   report.CompletedIncome.String(),
		CompletedExpense:  report.CompletedExpense.String(),
		RecomputedBalance: report.RecomputedBalance.String(),
		InSync:            report.InSync,
	}}, nil
}
