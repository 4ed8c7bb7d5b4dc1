// Package export builds the CSV documents served by the export endpoints.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/keller-networks/pms-server/internal/service"
)

// BankAccountCSV renders an account and its money tasks as CSV. The account
// header block comes first, then one row per task.
func BankAccountCSV(account service.BankAccount, tasks []service.MoneyTask) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Account Name", "Bank Name", "Account Number", "Initial Balance", "Current Balance"},
		{
			account.Name,
			account.BankName,
			account.AccountNumber,
			account.InitialBalance.String(),
			account.CurrentBalance.String(),
		},
		{},
		{"Title", "Description", "Amount", "Category", "Priority", "Status", "Due Date"},
	}
	for _, task := range tasks {
		rows = append(rows, []string{
			task.Title,
			task.Description,
			task.Amount.String(),
			task.Category,
			task.Priority,
			task.Status,
			task.DueDate,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// VaultCSV renders a vault's items as CSV with passwords already decrypted
// by the caller. The document is plaintext credentials; it is built for the
// user's download and never persisted.
func VaultCSV(v service.Vault, items []service.VaultItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Vault", "Category"},
		{v.Name, v.Category},
		{},
		{"Name", "Link", "Username", "Password", "Notes"},
	}
	for _, item := range items {
		rows = append(rows, []string{
			item.Name,
			item.Link,
			item.Username,
			item.Password,
			item.Notes,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
