package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage"
)

// DeleteMoneyTask removes one money task and recomputes its account's balance
// in the same transaction. Deletion never leaves a stale balance behind.
type DeleteMoneyTask struct {
	TaskID uuid.UUID

	IAction
}

func (d *DeleteMoneyTask) Perform(ctx context.Context, writer *storage.Writer) error {
	task, err := writer.MoneyTasks.FindByID(ctx, d.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	deleted, err := writer.MoneyTasks.Delete(ctx, d.TaskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}

	return recalculateBalance(ctx, writer, task.Account.ID)
}
