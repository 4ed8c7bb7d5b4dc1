package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage"
)

// DeleteBankAccount removes an account and every money task referencing it in
// one transaction, so no task can outlive its account.
type DeleteBankAccount struct {
	AccountID uuid.UUID

	IAction
}

func (d *DeleteBankAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.BankAccounts.FindByIDForUpdate(ctx, d.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if _, err := writer.MoneyTasks.DeleteByAccount(ctx, d.AccountID); err != nil {
		return err
	}

	deleted, err := writer.BankAccounts.Delete(ctx, d.AccountID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAccountNotFound
	}
	return nil
}
