package bankaccount

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BankAccount represents a bank account record.
type BankAccount struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	BankName       string
	AccountNumber  string
	InitialBalance decimal.Decimal
	// CurrentBalance is the cached reconciliation result. Rows created before
	// the cache existed carry NULL until the next read backfills them.
	CurrentBalance decimal.NullDecimal
	CreatedAt      time.Time
}

// BankAccountCreate is the input for creating a new bank account.
type BankAccountCreate struct {
	UserID         uuid.UUID
	Name           string
	BankName       string
	AccountNumber  string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
}

// IBankAccountTable defines the interface for bank account storage operations.
// Find methods return (nil, nil) when no row matches.
type IBankAccountTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BankAccount, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*BankAccount, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*BankAccount, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BankAccount, error)
	Insert(ctx context.Context, create *BankAccountCreate) (uuid.UUID, error)
	UpdateCurrentBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
