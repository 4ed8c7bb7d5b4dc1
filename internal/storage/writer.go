package storage

import (
	"database/sql"

	"github.com/keller-networks/pms-server/internal/storage/bankaccount"
	"github.com/keller-networks/pms-server/internal/storage/moneytask"
	"github.com/keller-networks/pms-server/internal/storage/user"
	"github.com/keller-networks/pms-server/internal/storage/vault"
)

// Writer exposes the tables bound to a single transaction. Actions perform
// all their reads and writes through one Writer so multi-row mutations (a
// money task change plus its balance recompute, a cascade delete) commit or
// roll back together.
type Writer struct {
	tx                  *sql.Tx
	Users               user.IUserTable
	ProfessionalDetails user.IProfessionalDetailsTable
	BankAccounts        bankaccount.IBankAccountTable
	MoneyTasks          moneytask.IMoneyTaskTable
	Vaults              vault.IVaultTable
	VaultItems          vault.IVaultItemTable
}

func NewWriter(tx *sql.Tx) Writer {
	return Writer{
		tx:                  tx,
		Users:               user.NewUsersTable(tx),
		ProfessionalDetails: user.NewProfessionalDetailsTable(tx),
		BankAccounts:        bankaccount.NewBankAccountsTable(tx),
		MoneyTasks:          moneytask.NewMoneyTasksTable(tx),
		Vaults:              vault.NewVaultsTable(tx),
		VaultItems:          vault.NewVaultItemsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
