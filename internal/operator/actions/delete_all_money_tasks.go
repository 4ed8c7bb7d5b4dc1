package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage"
)

// DeleteAllMoneyTasks removes every money task a user owns and recomputes
// each of their accounts, which settles every current balance back to its
// initial balance.
type DeleteAllMoneyTasks struct {
	UserID uuid.UUID

	// DeletedCount is set on success.
	DeletedCount int64

	IAction
}

func (d *DeleteAllMoneyTasks) Perform(ctx context.Context, writer *storage.Writer) error {
	count, err := writer.MoneyTasks.DeleteByUser(ctx, d.UserID)
	if err != nil {
		return err
	}
	d.DeletedCount = count

	accounts, err := writer.BankAccounts.ListByUser(ctx, d.UserID)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if err := recalculateBalance(ctx, writer, account.ID); err != nil {
			return err
		}
	}
	return nil
}
