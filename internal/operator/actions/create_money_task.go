package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/moneytask"
)

type CreateMoneyTask struct {
	UserID        uuid.UUID
	BankAccountID uuid.UUID
	Title         string
	Description   string
	Amount        decimal.Decimal
	Category      string
	Priority      string
	Status        string
	DueDate       string

	// CreatedID is set on success.
	CreatedID uuid.UUID

	IAction
}

func (c *CreateMoneyTask) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.BankAccounts.FindByIDForUpdate(ctx, c.BankAccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	if account.UserID != c.UserID {
		return ErrAccountOwnerMismatch
	}

	id, err := writer.MoneyTasks.Insert(ctx, &moneytask.MoneyTaskCreate{
		UserID:        c.UserID,
		BankAccountID: c.BankAccountID,
		Title:         c.Title,
		Description:   c.Description,
		Amount:        c.Amount,
		Category:      c.Category,
		Priority:      c.Priority,
		Status:        c.Status,
		DueDate:       c.DueDate,
	})
	if err != nil {
		return err
	}
	c.CreatedID = id

	return recalculateBalance(ctx, writer, c.BankAccountID)
}
