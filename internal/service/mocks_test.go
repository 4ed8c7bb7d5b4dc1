package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/keller-networks/pms-server/internal/operator/actions"
	"github.com/keller-networks/pms-server/internal/storage/bankaccount"
	"github.com/keller-networks/pms-server/internal/storage/diary"
	"github.com/keller-networks/pms-server/internal/storage/moneytask"
	"github.com/keller-networks/pms-server/internal/storage/task"
	"github.com/keller-networks/pms-server/internal/storage/user"
	"github.com/keller-networks/pms-server/internal/storage/vault"
)

// Hand-written testify mocks for the table interfaces the service tests
// exercise.

type mockUserTable struct{ mock.Mock }

func (m *mockUserTable) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserTable) Insert(ctx context.Context, create *user.UserCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockUserTable) Update(ctx context.Context, u *user.User) (bool, error) {
	args := m.Called(ctx, u)
	return args.Bool(0), args.Error(1)
}

type mockProfessionalDetailsTable struct{ mock.Mock }

func (m *mockProfessionalDetailsTable) FindByUserID(ctx context.Context, userID uuid.UUID) (*user.ProfessionalDetails, error) {
	args := m.Called(ctx, userID)
	d, _ := args.Get(0).(*user.ProfessionalDetails)
	return d, args.Error(1)
}

func (m *mockProfessionalDetailsTable) Insert(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockProfessionalDetailsTable) Update(ctx context.Context, details *user.ProfessionalDetails) (bool, error) {
	args := m.Called(ctx, details)
	return args.Bool(0), args.Error(1)
}

type mockBankAccountTable struct{ mock.Mock }

func (m *mockBankAccountTable) FindByID(ctx context.Context, id uuid.UUID) (*bankaccount.BankAccount, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*bankaccount.BankAccount)
	return a, args.Error(1)
}

func (m *mockBankAccountTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*bankaccount.BankAccount, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*bankaccount.BankAccount)
	return a, args.Error(1)
}

func (m *mockBankAccountTable) FindByAccountNumber(ctx context.Context, accountNumber string) (*bankaccount.BankAccount, error) {
	args := m.Called(ctx, accountNumber)
	a, _ := args.Get(0).(*bankaccount.BankAccount)
	return a, args.Error(1)
}

func (m *mockBankAccountTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*bankaccount.BankAccount, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*bankaccount.BankAccount)
	return rows, args.Error(1)
}

func (m *mockBankAccountTable) Insert(ctx context.Context, create *bankaccount.BankAccountCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockBankAccountTable) UpdateCurrentBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return m.Called(ctx, id, balance).Error(0)
}

func (m *mockBankAccountTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockMoneyTaskTable struct{ mock.Mock }

func (m *mockMoneyTaskTable) FindByID(ctx context.Context, id uuid.UUID) (*moneytask.MoneyTask, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*moneytask.MoneyTask)
	return t, args.Error(1)
}

func (m *mockMoneyTaskTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*moneytask.MoneyTask, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*moneytask.MoneyTask)
	return rows, args.Error(1)
}

func (m *mockMoneyTaskTable) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*moneytask.MoneyTask, error) {
	args := m.Called(ctx, accountID)
	rows, _ := args.Get(0).([]*moneytask.MoneyTask)
	return rows, args.Error(1)
}

func (m *mockMoneyTaskTable) Insert(ctx context.Context, create *moneytask.MoneyTaskCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockMoneyTaskTable) Update(ctx context.Context, t *moneytask.MoneyTask) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *mockMoneyTaskTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockMoneyTaskTable) DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMoneyTaskTable) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockTaskTable struct{ mock.Mock }

func (m *mockTaskTable) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*task.Task)
	return t, args.Error(1)
}

func (m *mockTaskTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*task.Task, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*task.Task)
	return rows, args.Error(1)
}

func (m *mockTaskTable) Insert(ctx context.Context, create *task.TaskCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTaskTable) Update(ctx context.Context, t *task.Task) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *mockTaskTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTaskTable) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockDiaryTable struct{ mock.Mock }

func (m *mockDiaryTable) FindByID(ctx context.Context, id uuid.UUID) (*diary.Entry, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*diary.Entry)
	return e, args.Error(1)
}

func (m *mockDiaryTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*diary.Entry, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*diary.Entry)
	return rows, args.Error(1)
}

func (m *mockDiaryTable) Insert(ctx context.Context, create *diary.EntryCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockDiaryTable) Update(ctx context.Context, e *diary.Entry) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (m *mockDiaryTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockVaultTable struct{ mock.Mock }

func (m *mockVaultTable) FindByID(ctx context.Context, id uuid.UUID) (*vault.Vault, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*vault.Vault)
	return v, args.Error(1)
}

func (m *mockVaultTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*vault.Vault, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*vault.Vault)
	return rows, args.Error(1)
}

func (m *mockVaultTable) Insert(ctx context.Context, create *vault.VaultCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockVaultTable) Update(ctx context.Context, v *vault.Vault) (bool, error) {
	args := m.Called(ctx, v)
	return args.Bool(0), args.Error(1)
}

func (m *mockVaultTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockVaultItemTable struct{ mock.Mock }

func (m *mockVaultItemTable) FindByID(ctx context.Context, id uuid.UUID) (*vault.Item, error) {
	args := m.Called(ctx, id)
	i, _ := args.Get(0).(*vault.Item)
	return i, args.Error(1)
}

func (m *mockVaultItemTable) ListByVault(ctx context.Context, vaultID uuid.UUID) ([]*vault.Item, error) {
	args := m.Called(ctx, vaultID)
	rows, _ := args.Get(0).([]*vault.Item)
	return rows, args.Error(1)
}

func (m *mockVaultItemTable) Insert(ctx context.Context, create *vault.ItemCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockVaultItemTable) Update(ctx context.Context, i *vault.Item) (bool, error) {
	args := m.Called(ctx, i)
	return args.Bool(0), args.Error(1)
}

func (m *mockVaultItemTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockVaultItemTable) DeleteByVault(ctx context.Context, vaultID uuid.UUID) (int64, error) {
	args := m.Called(ctx, vaultID)
	return args.Get(0).(int64), args.Error(1)
}

type mockDelegator struct{ mock.Mock }

func (m *mockDelegator) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}
