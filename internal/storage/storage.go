package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/keller-networks/pms-server/internal/config"
	"github.com/keller-networks/pms-server/internal/storage/bankaccount"
	"github.com/keller-networks/pms-server/internal/storage/diary"
	"github.com/keller-networks/pms-server/internal/storage/moneytask"
	"github.com/keller-networks/pms-server/internal/storage/task"
	"github.com/keller-networks/pms-server/internal/storage/todo"
	"github.com/keller-networks/pms-server/internal/storage/user"
	"github.com/keller-networks/pms-server/internal/storage/vault"
)

// Storage aggregates every table over a shared database handle.
type Storage struct {
	DB                  *sql.DB
	Users               user.IUserTable
	ProfessionalDetails user.IProfessionalDetailsTable
	BankAccounts        bankaccount.IBankAccountTable
	MoneyTasks          moneytask.IMoneyTaskTable
	Tasks               task.ITaskTable
	Todos               todo.ITodoTable
	Diary               diary.IDiaryTable
	Vaults              vault.IVaultTable
	VaultItems          vault.IVaultItemTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	return &Storage{
		DB:                  db,
		Users:               user.NewUsersTable(db),
		ProfessionalDetails: user.NewProfessionalDetailsTable(db),
		BankAccounts:        bankaccount.NewBankAccountsTable(db),
		MoneyTasks:          moneytask.NewMoneyTasksTable(db),
		Tasks:               task.NewTasksTable(db),
		Todos:               todo.NewTodosTable(db),
		Diary:               diary.NewDiaryTable(db),
		Vaults:              vault.NewVaultsTable(db),
		VaultItems:          vault.NewVaultItemsTable(db),
	}, nil
}

// Write begins a transaction and returns a Writer whose tables run inside it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
