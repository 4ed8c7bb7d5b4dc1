package moneytask

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage/sqlexec"
)

// MoneyTasksTable provides access to the money_tasks table.
type MoneyTasksTable struct {
	exec sqlexec.Queryer
}

// Ensure MoneyTasksTable implements IMoneyTaskTable at compile time.
var _ IMoneyTaskTable = (*MoneyTasksTable)(nil)

// NewMoneyTasksTable creates a MoneyTasksTable over the given executor.
func NewMoneyTasksTable(exec sqlexec.Queryer) *MoneyTasksTable {
	return &MoneyTasksTable{exec: exec}
}

const moneyTaskSelect = `
SELECT mt.id, mt.user_id, mt.title, mt.description, mt.amount, mt.category,
       mt.priority, mt.status, mt.due_date, mt.created_at, mt.updated_at,
       ba.id, ba.name, ba.bank_name, ba.account_number
FROM money_tasks mt
JOIN bank_accounts ba ON ba.id = mt.bank_account_id`

func scanMoneyTask(row interface{ Scan(...any) error }) (*MoneyTask, error) {
	var task MoneyTask
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Amount,
		&task.Category,
		&task.Priority,
		&task.Status,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.Account.ID,
		&task.Account.Name,
		&task.Account.BankName,
		&task.Account.AccountNumber,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByID retrieves a money task by primary key.
func (t *MoneyTasksTable) FindByID(ctx context.Context, id uuid.UUID) (*MoneyTask, error) {
	task, err := scanMoneyTask(t.exec.QueryRowContext(ctx, moneyTaskSelect+` WHERE mt.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return task, err
}

func (t *MoneyTasksTable) list(ctx context.Context, query string, args ...any) ([]*MoneyTask, error) {
	rows, err := t.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*MoneyTask
	for rows.Next() {
		task, err := scanMoneyTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	return result, rows.Err()
}

// ListByUser returns all money tasks for a user, newest first.
func (t *MoneyTasksTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*MoneyTask, error) {
	return t.list(ctx, moneyTaskSelect+` WHERE mt.user_id = $1 ORDER BY mt.created_at DESC, mt.id DESC`, userID)
}

// ListByAccount returns all money tasks referencing a bank account, newest first.
func (t *MoneyTasksTable) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*MoneyTask, error) {
	return t.list(ctx, moneyTaskSelect+` WHERE mt.bank_account_id = $1 ORDER BY mt.created_at DESC, mt.id DESC`, accountID)
}

// Insert creates a new money task and returns its generated ID.
func (t *MoneyTasksTable) Insert(ctx context.Context, create *MoneyTaskCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRowContext(ctx,
		`INSERT INTO money_tasks (user_id, bank_account_id, title, description, amount, category, priority, status, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		create.UserID, create.BankAccountID, create.Title, create.Description,
		create.Amount, create.Category, create.Priority, create.Status, create.DueDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update writes all mutable columns of a money task. Returns false when no
// row matched.
func (t *MoneyTasksTable) Update(ctx context.Context, task *MoneyTask) (bool, error) {
	result, err := t.exec.ExecContext(ctx,
		`UPDATE money_tasks
		 SET bank_account_id = $2, title = $3, description = $4, amount = $5,
		     category = $6, priority = $7, status = $8, due_date = $9, updated_at = now()
		 WHERE id = $1`,
		task.ID, task.Account.ID, task.Title, task.Description, task.Amount,
		task.Category, task.Priority, task.Status, task.DueDate)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a money task. Returns false when no row matched.
func (t *MoneyTasksTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM money_tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteByAccount removes every money task referencing a bank account.
func (t *MoneyTasksTable) DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM money_tasks WHERE bank_account_id = $1`, accountID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteByUser removes every money task owned by a user.
func (t *MoneyTasksTable) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM money_tasks WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
