package moneytask

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AccountRef carries the owning bank account's display fields, joined on
// every read so callers never deal with a bare identifier in one place and a
// populated object in another.
type AccountRef struct {
	ID            uuid.UUID
	Name          string
	BankName      string
	AccountNumber string
}

// MoneyTask represents a money task record with its owning account joined in.
type MoneyTask struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Account     AccountRef
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

// MoneyTaskCreate is the input for creating a new money task.
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

// IMoneyTaskTable defines the interface for money task storage operations.
// Find methods return (nil, nil) when no row matches.
type IMoneyTaskTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MoneyTask, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*MoneyTask, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*MoneyTask, error)
	Insert(ctx context.Context, create *MoneyTaskCreate) (uuid.UUID, error)
	Update(ctx context.Context, task *MoneyTask) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
