package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/ledger"
	"github.com/keller-networks/pms-server/internal/operator/actions"
	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/bankaccount"
	"github.com/keller-networks/pms-server/internal/storage/moneytask"
)

// MoneyService handles bank accounts and money tasks. Reads go straight to
// storage; every mutation is delegated to the operator so the balance
// recompute commits in the same transaction as the change.
type MoneyService struct {
	storage   *storage.Storage
	delegator Delegator
}

// NewMoneyService creates a new MoneyService.
func NewMoneyService(store *storage.Storage, delegator Delegator) *MoneyService {
	return &MoneyService{storage: store, delegator: delegator}
}

// CreateBankAccount creates an account whose current balance starts equal to
// its initial balance.
func (s *MoneyService) CreateBankAccount(ctx context.Context, create BankAccountCreate) (uuid.UUID, error) {
	action := &actions.CreateBankAccount{
		UserID:         create.UserID,
		Name:           create.Name,
		BankName:       create.BankName,
		AccountNumber:  create.AccountNumber,
		InitialBalance: create.InitialBalance,
	}
	if err := s.delegator.Process(ctx, action); err != nil {
		if err == actions.ErrAccountNumberTaken {
			return uuid.Nil, ErrAccountNumberTaken
		}
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetBankAccount retrieves one account, backfilling its balance cache if it
// has never been computed.
func (s *MoneyService) GetBankAccount(ctx context.Context, id uuid.UUID) (*BankAccount, error) {
	row, err := s.storage.BankAccounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrAccountNotFound
	}

	account, err := s.backfillBalance(ctx, row)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ListBankAccounts returns all of a user's accounts. Accounts persisted
// before the balance cache existed carry NULL; those are recomputed and
// persisted before being served.
func (s *MoneyService) ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]BankAccount, error) {
	rows, err := s.storage.BankAccounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts := make([]BankAccount, len(rows))
	for i, row := range rows {
		account, err := s.backfillBalance(ctx, row)
		if err != nil {
			return nil, err
		}
		accounts[i] = *account
	}
	return accounts, nil
}

// DeleteBankAccount removes an account and all of its money tasks in one
// transaction.
func (s *MoneyService) DeleteBankAccount(ctx context.Context, id uuid.UUID) error {
	err := s.delegator.Process(ctx, &actions.DeleteBankAccount{AccountID: id})
	if err == actions.ErrAccountNotFound {
		return ErrAccountNotFound
	}
	return err
}

// Reconcile produces the read-only report comparing an account's stored
// balance against a fresh recomputation.
func (s *MoneyService) Reconcile(ctx context.Context, accountID uuid.UUID) (*ReconciliationReport, error) {
	row, err := s.storage.BankAccounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrAccountNotFound
	}

	tasks, err := s.storage.MoneyTasks.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ledgerTasks := make([]ledger.Task, len(tasks))
	for i, task := range tasks {
		ledgerTasks[i] = ledger.Task{
			Amount:   task.Amount,
			Category: task.Category,
			Status:   task.Status,
		}
	}

	summary, err := ledger.Reconcile(
		&ledger.Account{ID: row.ID, InitialBalance: row.InitialBalance},
		ledgerTasks,
	)
	if err != nil {
		return nil, err
	}

	account, err := s.backfillBalance(ctx, row)
	if err != nil {
		return nil, err
	}

	return &ReconciliationReport{
		Account:           *account,
		TaskCount:         len(tasks),
		StoredBalance:     account.CurrentBalance,
		InitialBalance:    summary.InitialBalance,
		CompletedIncome:   summary.CompletedIncome,
		CompletedExpense:  summary.CompletedExpense,
		RecomputedBalance: summary.CurrentBalance,
		InSync:            account.CurrentBalance.Equal(summary.CurrentBalance),
	}, nil
}

// CreateMoneyTask creates a task against one of the user's accounts and
// recomputes that account's balance.
func (s *MoneyService) CreateMoneyTask(ctx context.Context, create MoneyTaskCreate) (uuid.UUID, error) {
	action := &actions.CreateMoneyTask{
		UserID:        create.UserID,
		BankAccountID: create.BankAccountID,
		Title:         create.Title,
		Description:   create.Description,
		Amount:        create.Amount,
		Category:      create.Category,
		Priority:      create.Priority,
		Status:        create.Status,
		DueDate:       create.DueDate,
	}
	if err := s.delegator.Process(ctx, action); err != nil {
		return uuid.Nil, mapMoneyActionErr(err)
	}
	return action.CreatedID, nil
}

// ListMoneyTasks returns all of a user's money tasks, newest first, each with
// its owning account's name, bank and number.
func (s *MoneyService) ListMoneyTasks(ctx context.Context, userID uuid.UUID) ([]MoneyTask, error) {
	rows, err := s.storage.MoneyTasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks := make([]MoneyTask, len(rows))
	for i, row := range rows {
		tasks[i] = moneyTaskFromStorage(row)
	}
	return tasks, nil
}

// ListAccountMoneyTasks returns every money task drawing on one account.
func (s *MoneyService) ListAccountMoneyTasks(ctx context.Context, accountID uuid.UUID) ([]MoneyTask, error) {
	rows, err := s.storage.MoneyTasks.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	tasks := make([]MoneyTask, len(rows))
	for i, row := range rows {
		tasks[i] = moneyTaskFromStorage(row)
	}
	return tasks, nil
}

// UpdateMoneyTask applies a partial edit and recomputes every affected
// account.
func (s *MoneyService) UpdateMoneyTask(ctx context.Context, id uuid.UUID, update MoneyTaskUpdate) error {
	err := s.delegator.Process(ctx, &actions.UpdateMoneyTask{
		TaskID:        id,
		BankAccountID: update.BankAccountID,
		Title:         update.Title,
		Description:   update.Description,
		Amount:        update.Amount,
		Category:      update.Category,
		Priority:      update.Priority,
		Status:        update.Status,
		DueDate:       update.DueDate,
	})
	return mapMoneyActionErr(err)
}

// DeleteMoneyTask removes a task and recomputes its account.
func (s *MoneyService) DeleteMoneyTask(ctx context.Context, id uuid.UUID) error {
	return mapMoneyActionErr(s.delegator.Process(ctx, &actions.DeleteMoneyTask{TaskID: id}))
}

// DeleteAllMoneyTasks removes every money task the user owns and returns how
// many were deleted.
func (s *MoneyService) DeleteAllMoneyTasks(ctx context.Context, userID uuid.UUID) (int64, error) {
	action := &actions.DeleteAllMoneyTasks{UserID: userID}
	if err := s.delegator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.DeletedCount, nil
}

// backfillBalance serves the cached balance when present, otherwise runs the
// recompute through the operator and re-reads the persisted result.
func (s *MoneyService) backfillBalance(ctx context.Context, row *bankaccount.BankAccount) (*BankAccount, error) {
	if !row.CurrentBalance.Valid {
		err := s.delegator.Process(ctx, &actions.RecalculateBalance{AccountID: row.ID})
		if err != nil {
			return nil, err
		}
		row, err = s.storage.BankAccounts.FindByID(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, ErrAccountNotFound
		}
	}

	return &BankAccount{
		ID:             row.ID,
		UserID:         row.UserID,
		Name:           row.Name,
		BankName:       row.BankName,
		AccountNumber:  row.AccountNumber,
		InitialBalance: row.InitialBalance,
		CurrentBalance: row.CurrentBalance.Decimal,
		CreatedAt:      row.CreatedAt,
	}, nil
}

func mapMoneyActionErr(err error) error {
	switch err {
	case actions.ErrAccountNotFound, actions.ErrAccountOwnerMismatch:
		return ErrAccountNotFound
	case actions.ErrTaskNotFound:
		return ErrTaskNotFound
	default:
		return err
	}
}

func moneyTaskFromStorage(row *moneytask.MoneyTask) MoneyTask {
	return MoneyTask{
		ID:     row.ID,
		UserID: row.UserID,
		Account: MoneyTaskAccount{
			ID:            row.Account.ID,
			Name:          row.Account.Name,
			BankName:      row.Account.BankName,
			AccountNumber: row.Account.AccountNumber,
		},
		Title:       row.Title,
		Description: row.Description,
		Amount:      row.Amount,
		Category:    row.Category,
		Priority:    row.Priority,
		Status:      row.Status,
		DueDate:     row.DueDate,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
