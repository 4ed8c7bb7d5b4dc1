package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/keller-networks/pms-server/internal/storage"
)

// UpdateMoneyTask applies a partial edit to a money task. Nil fields are left
// unchanged. Both the previous and (when the task moves) the new account are
// fully recomputed afterwards.
type UpdateMoneyTask struct {
	TaskID        uuid.UUID
	BankAccountID *uuid.UUID
	Title         *string
	Description   *string
	Amount        *decimal.Decimal
	Category      *string
	Priority      *string
	Status        *string
	DueDate       *string

	IAction
}

func (u *UpdateMoneyTask) Perform(ctx context.Context, writer *storage.Writer) error {
	task, err := writer.MoneyTasks.FindByID(ctx, u.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	previousAccountID := task.Account.ID

	if u.BankAccountID != nil && *u.BankAccountID != previousAccountID {
		target, err := writer.BankAccounts.FindByIDForUpdate(ctx, *u.BankAccountID)
		if err != nil {
			return err
		}
		if target == nil {
			return ErrAccountNotFound
		}
		if target.UserID != task.UserID {
			return ErrAccountOwnerMismatch
		}
		task.Account.ID = *u.BankAccountID
	}
	if u.Title != nil {
		task.Title = *u.Title
	}
	if u.Description != nil {
		task.Description = *u.Description
	}
	if u.Amount != nil {
		task.Amount = *u.Amount
	}
	if u.Category != nil {
		task.Category = *u.Category
	}
	if u.Priority != nil {
		task.Priority = *u.Priority
	}
	if u.Status != nil {
		task.Status = *u.Status
	}
	if u.DueDate != nil {
		task.DueDate = *u.DueDate
	}

	updated, err := writer.MoneyTasks.Update(ctx, task)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTaskNotFound
	}

	if err := recalculateBalance(ctx, writer, previousAccountID); err != nil {
		return err
	}
	if task.Account.ID != previousAccountID {
		return recalculateBalance(ctx, writer, task.Account.ID)
	}
	return nil
}
