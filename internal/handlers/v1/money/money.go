// Package money exposes the bank account and money task endpoints.
package money

import (
	"time"

	"github.com/keller-networks/pms-server/internal/service"
)

// BankAccount is the API response model for a bank account.
type BankAccount struct {
	ID             string `json:"id" doc:"Account UUID"`
	UserID         string `json:"userID" doc:"Owner UUID"`
	Name           string `json:"name" doc:"Account nickname"`
	BankName       string `json:"bankName" doc:"Bank name"`
	AccountNumber  string `json:"accountNumber" doc:"Account number"`
	InitialBalance string `json:"initialBalance" doc:"Decimal opening balance"`
	CurrentBalance string `json:"currentBalance" doc:"Decimal reconciled balance"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
}

// MoneyTask is the API response model for a money task.
type MoneyTask struct {
	ID          string         `json:"id" doc:"Task UUID"`
	UserID      string         `json:"userID" doc:"Owner UUID"`
	Account     BankAccountRef `json:"account" doc:"Owning bank account"`
	Title       string         `json:"title" doc:"Task title"`
	Description string         `json:"description,omitempty" doc:"Task description"`
	Amount      string         `json:"amount" doc:"Decimal amount"`
	Category    string         `json:"category" doc:"Category, 'income' counts toward the balance"`
	Priority    string         `json:"priority,omitempty" doc:"Priority"`
	Status      string         `json:"status" doc:"pending, in-progress or completed"`
	DueDate     string         `json:"dueDate,omitempty" doc:"Due date"`
	CreatedAt   string         `json:"createdAt" doc:"RFC3339 creation time"`
}

// BankAccountRef carries the owning account's display fields on a task.
type BankAccountRef struct {
	ID            string `json:"id" doc:"Account UUID"`
	Name          string `json:"name" doc:"Account nickname"`
	BankName      string `json:"bankName" doc:"Bank name"`
	AccountNumber string `json:"accountNumber" doc:"Account number"`
}

func bankAccountToAPI(a service.BankAccount) BankAccount {
	return BankAccount{
		ID:             a.ID.String(),
		UserID:         a.UserID.String(),
		Name:           a.Name,
		BankName:       a.BankName,
		AccountNumber:  a.AccountNumber,
		InitialBalance: a.InitialBalance.String(),
		CurrentBalance: a.CurrentBalance.String(),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

func moneyTaskToAPI(t service.MoneyTask) MoneyTask {
	return MoneyTask{
		ID:     t.ID.String(),
		UserID: t.UserID.String(),
		Account: BankAccountRef{
			ID:            t.Account.ID.String(),
			Name:          t.Account.Name,
			BankName:      t.Account.BankName,
			AccountNumber: t.Account.AccountNumber,
		},
		Title:       t.Title,
		Description: t.Description,
		Amount:      t.Amount.String(),
		Category:    t.Category,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
