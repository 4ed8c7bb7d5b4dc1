package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/keller-networks/pms-server/internal/service"
)

func TestBankAccountCSV(t *testing.T) {
	account := service.BankAccount{
		Name:           "Checking",
		BankName:       "First National",
		AccountNumber:  "000111222",
		InitialBalance: decimal.RequireFromString("1000.00"),
		CurrentBalance: decimal.RequireFromString("1100.00"),
	}
	tasks := []service.MoneyTask{
		{
			Title:    "Salary",
			Amount:   decimal.RequireFromString("300.00"),
			Category: "income",
			Status:   "completed",
			DueDate:  "2025-03-01",
		},
		{
			Title:       "Groceries, weekly",
			Description: "includes \"staples\"",
			Amount:      decimal.RequireFromString("200.00"),
			Category:    "food",
			Status:      "completed",
		},
	}

	out, err := BankAccountCSV(account, tasks)
	assert.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 5, "two header blocks plus two task rows")

	assert.Equal(t, []string{"Checking", "First National", "000111222", "1000.00", "1100.00"}, records[1])
	assert.Equal(t, "Salary", records[3][0])

	// Quotes and commas survive the round trip.
	assert.Equal(t, "Groceries, weekly", records[4][0])
	assert.Equal(t, "includes \"staples\"", records[4][1])
}

func TestVaultCSV_IncludesDecryptedPasswords(t *testing.T) {
	v := service.Vault{Name: "Personal", Category: "personal"}
	items := []service.VaultItem{
		{Name: "github", Link: "https://github.com", Username: "jamie", Password: "hunter2"},
		{Name: "legacy", Username: "old", Password: ""},
	}

	out, err := VaultCSV(v, items)
	assert.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 5)

	assert.Equal(t, []string{"github", "https://github.com", "jamie", "hunter2", ""}, records[3])
	assert.Equal(t, "", records[4][3], "undecryptable item exports an empty password")
}
