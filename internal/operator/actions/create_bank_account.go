package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/bankaccount"
)

type CreateBankAccount struct {
	UserID         uuid.UUID
	Name           string
	BankName       string
	AccountNumber  string
	InitialBalance decimal.Decimal

	// CreatedID is set on success.
	CreatedID uuid.UUID

	IAction
}

func (c *CreateBankAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.BankAccounts.FindByAccountNumber(ctx, c.AccountNumber)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAccountNumberTaken
	}

	// A fresh account has no tasks, so its current balance is its initial one.
	id, err := writer.BankAccounts.Insert(ctx, &bankaccount.BankAccountCreate{
		UserID:         c.UserID,
		Name:           c.Name,
		BankName:       c.BankName,
		AccountNumber:  c.AccountNumber,
		InitialBalance: c.InitialBalance,
		CurrentBalance: c.InitialBalance,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
