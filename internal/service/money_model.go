package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BankAccount represents a bank account in the service layer. CurrentBalance
// is always populated; rows with a NULL cache are backfilled before they are
// served.
type BankAccount struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	BankName       string
	AccountNumber  string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	CreatedAt      time.Time
}

// BankAccountCreate is the input for creating a bank account.
type BankAccountCreate struct {
	UserID         uuid.UUID
	Name           string
	BankName       string
	AccountNumber  string
	InitialBalance decimal.Decimal
}

// MoneyTask represents a money task in the service layer, carrying the
// owning account's display fields.
type MoneyTask struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Account     MoneyTaskAccount
	Title       string
	Description string
	Amount      decimal.Decimal
	Category    string
	Priority    string
	Status      string
	DueDate     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MoneyTaskAccount identifies the account a money task draws on.
type MoneyTaskAccount struct {
	ID            uuid.UUID
	Name          string
	BankName      string
	AccountNumber string
}

// MoneyTaskCreate is the input for creating a money task.
type MoneyTaskCreate struct {
	UserID        uuid.UUID
	BankAccountID uuid.UUID
	Title         string
	Description   string
	Amount        decimal.Decimal
	Category      string
	Priority      string
	Status        string
	DueDate       string
}

// MoneyTaskUpdate is a partial edit; nil fields keep their current value.
type MoneyTaskUpdate struct {
	BankAccountID *uuid.UUID
	Title         *string
	Description   *string
	Amount        *decimal.Decimal
	Category      *string
	Priority      *string
	Status        *string
	DueDate       *string
}

// ReconciliationReport compares an account's stored balance against a fresh
// recomputation over its full task set.
type ReconciliationReport struct {
	Account           BankAccount
	TaskCount         int
	StoredBalance     decimal.Decimal
	InitialBalance    decimal.Decimal
	CompletedIncome   decimal.Decimal
	CompletedExpense  decimal.Decimal
	RecomputedBalance decimal.Decimal
	InSync            bool
}
