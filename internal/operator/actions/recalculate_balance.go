package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/ledger"
	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/moneytask"
)

// RecalculateBalance recomputes and persists one account's current balance
// from its full task set. It is the only code path that writes
// current_balance; every money mutation ends here.
type RecalculateBalance struct {
	AccountID uuid.UUID

	IAction
}

func (r *RecalculateBalance) Perform(ctx context.Context, writer *storage.Writer) error {
	return recalculateBalance(ctx, writer, r.AccountID)
}

// recalculateBalance locks the account row, reloads the complete task set and
// stores the ledger result. Full recompute keeps the operation idempotent; no
// caller is allowed to patch the stored balance incrementally.
func recalculateBalance(ctx context.Context, writer *storage.Writer, accountID uuid.UUID) error {
	account, err := writer.BankAccounts.FindByIDForUpdate(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	tasks, err := writer.MoneyTasks.ListByAccount(ctx, accountID)
	if err != nil {
		return err
	}

	balance, err := ledger.Recompute(
		&ledger.Account{ID: account.ID, InitialBalance: account.InitialBalance},
		ledgerTasks(tasks),
	)
	if err != nil {
		return err
	}

	return writer.BankAccounts.UpdateCurrentBalance(ctx, accountID, balance)
}

func ledgerTasks(tasks []*moneytask.MoneyTask) []ledger.Task {
	converted := make([]ledger.Task, len(tasks))
	for i, task := range tasks {
		converted[i] = ledger.Task{
			Amount:   task.Amount,
			Category: task.Category,
			Status:   task.Status,
		}
	}
	return converted
}
