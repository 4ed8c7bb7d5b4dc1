package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/keller-networks/pms-server/internal/operator/actions"
	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/bankaccount"
	"github.com/keller-networks/pms-server/internal/storage/moneytask"
)

func newTestMoneyService() (*MoneyService, *mockBankAccountTable, *mockMoneyTaskTable, *mockDelegator) {
	accounts := &mockBankAccountTable{}
	tasks := &mockMoneyTaskTable{}
	delegator := &mockDelegator{}
	store := &storage.Storage{BankAccounts: accounts, MoneyTasks: tasks}
	return NewMoneyService(store, delegator), accounts, tasks, delegator
}

func cachedAccount(id uuid.UUID, initial, current string) *bankaccount.BankAccount {
	return &bankaccount.BankAccount{
		ID:             id,
		UserID:         uuid.Must(uuid.NewV4()),
		Name:           "Checking",
		BankName:       "First National",
		AccountNumber:  "000111222",
		InitialBalance: decimal.RequireFromString(initial),
		CurrentBalance: decimal.NullDecimal{
			Decimal: decimal.RequireFromString(current),
			Valid:   true,
		},
	}
}

func TestListBankAccounts_ServesCachedBalances(t *testing.T) {
	svc, accounts, _, delegator := newTestMoneyService()

	userID := uuid.Must(uuid.NewV4())
	accounts.On("ListByUser", mock.Anything, userID).Return([]*bankaccount.BankAccount{
		cachedAccount(uuid.Must(uuid.NewV4()), "1000.00", "1100.00"),
	}, nil)

	listed, err := svc.ListBankAccounts(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.True(t, listed[0].CurrentBalance.Equal(decimal.RequireFromString("1100.00")))
	delegator.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestListBankAccounts_BackfillsNullBalance(t *testing.T) {
	svc, accounts, _, delegator := newTestMoneyService()

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	stale := &bankaccount.BankAccount{
		ID:             accountID,
		UserID:         userID,
		Name:           "Savings",
		AccountNumber:  "333444555",
		InitialBalance: decimal.RequireFromString("500.00"),
	}
	accounts.On("ListByUser", mock.Anything, userID).Return([]*bankaccount.BankAccount{stale}, nil)

	delegator.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		recalc, ok := a.(*actions.RecalculateBalance)
		return ok && recalc.AccountID == accountID
	})).Return(nil)

	accounts.On("FindByID", mock.Anything, accountID).
		Return(cachedAccount(accountID, "500.00", "650.00"), nil)

	listed, err := svc.ListBankAccounts(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.True(t, listed[0].CurrentBalance.Equal(decimal.RequireFromString("650.00")))
	delegator.AssertExpectations(t)
}

func TestCreateBankAccount_MapsDuplicateNumber(t *testing.T) {
	svc, _, _, delegator := newTestMoneyService()

	delegator.On("Process", mock.Anything, mock.Anything).
		Return(actions.ErrAccountNumberTaken)

	id, err := svc.CreateBankAccount(context.Background(), BankAccountCreate{
		UserID:        uuid.Must(uuid.NewV4()),
		AccountNumber: "000111222",
	})

	assert.ErrorIs(t, err, ErrAccountNumberTaken)
	assert.Equal(t, uuid.Nil, id)
}

func TestReconcile_ReportsDrift(t *testing.T) {
	svc, accounts, tasks, _ := newTestMoneyService()

	accountID := uuid.Must(uuid.NewV4())

	// Stored balance says 1000 but the task set reconciles to 1100.
	accounts.On("FindByID", mock.Anything, accountID).
		Return(cachedAccount(accountID, "1000.00", "1000.00"), nil)
	tasks.On("ListByAccount", mock.Anything, accountID).Return([]*moneytask.MoneyTask{
		{
			Amount:   decimal.RequireFromString("300.00"),
			Category: "income",
			Status:   "completed",
		},
		{
			Amount:   decimal.RequireFromString("200.00"),
			Category: "groceries",
			Status:   "completed",
		},
		{
			Amount:   decimal.RequireFromString("50.00"),
			Category: "groceries",
			Status:   "pending",
		},
	}, nil)

	report, err := svc.Reconcile(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Equal(t, 3, report.TaskCount)
	assert.True(t, report.StoredBalance.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, report.CompletedIncome.Equal(decimal.RequireFromString("300.00")))
	assert.True(t, report.CompletedExpense.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, report.RecomputedBalance.Equal(decimal.RequireFromString("1100.00")))
	assert.False(t, report.InSync)
}

func TestReconcile_InSync(t *testing.T) {
	svc, accounts, tasks, _ := newTestMoneyService()

	accountID := uuid.Must(uuid.NewV4())
	accounts.On("FindByID", mock.Anything, accountID).
		Return(cachedAccount(accountID, "1000.00", "1000.00"), nil)
	tasks.On("ListByAccount", mock.Anything, accountID).
		Return([]*moneytask.MoneyTask{}, nil)

	report, err := svc.Reconcile(context.Background(), accountID)

	assert.NoError(t, err)
	assert.True(t, report.InSync)
	assert.True(t, report.RecomputedBalance.Equal(decimal.RequireFromString("1000.00")))
}

func TestCreateMoneyTask_ReturnsCreatedID(t *testing.T) {
	svc, _, _, delegator := newTestMoneyService()

	createdID := uuid.Must(uuid.NewV4())
	delegator.On("Process", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.CreateMoneyTask)
			action.CreatedID = createdID
		}).Return(nil)

	id, err := svc.CreateMoneyTask(context.Background(), MoneyTaskCreate{
		UserID:        uuid.Must(uuid.NewV4()),
		BankAccountID: uuid.Must(uuid.NewV4()),
		Title:         "Rent",
		Amount:        decimal.RequireFromString("950.00"),
		Category:      "housing",
		Status:        "pending",
	})

	assert.NoError(t, err)
	assert.Equal(t, createdID, id)
}

func TestUpdateMoneyTask_MapsOwnerMismatch(t *testing.T) {
	svc, _, _, delegator := newTestMoneyService()

	delegator.On("Process", mock.Anything, mock.Anything).
		Return(actions.ErrAccountOwnerMismatch)

	otherAccount := uuid.Must(uuid.NewV4())
	err := svc.UpdateMoneyTask(context.Background(), uuid.Must(uuid.NewV4()), MoneyTaskUpdate{
		BankAccountID: &otherAccount,
	})

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestDeleteAllMoneyTasks_ReturnsCount(t *testing.T) {
	svc, _, _, delegator := newTestMoneyService()

	delegator.On("Process", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*actions.DeleteAllMoneyTasks).DeletedCount = 7
		}).Return(nil)

	count, err := svc.DeleteAllMoneyTasks(context.Background(), uuid.Must(uuid.NewV4()))

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestListMoneyTasks_CarriesAccountFields(t *testing.T) {
	svc, _, tasks, _ := newTestMoneyService()

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	tasks.On("ListByUser", mock.Anything, userID).Return([]*moneytask.MoneyTask{
		{
			ID:     uuid.Must(uuid.NewV4()),
			UserID: userID,
			Account: moneytask.AccountRef{
				ID:            accountID,
				Name:          "Checking",
				BankName:      "First National",
				AccountNumber: "000111222",
			},
			Title:    "Rent",
			Amount:   decimal.RequireFromString("950.00"),
			Category: "housing",
			Status:   "pending",
		},
	}, nil)

	listed, err := svc.ListMoneyTasks(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, accountID, listed[0].Account.ID)
	assert.Equal(t, "First National", listed[0].Account.BankName)
	assert.Equal(t, "000111222", listed[0].Account.AccountNumber)
}
