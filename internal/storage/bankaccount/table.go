package bankaccount

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/keller-networks/pms-server/internal/storage/sqlexec"
)

// BankAccountsTable provides access to the bank_accounts table.
type BankAccountsTable struct {
	exec sqlexec.Queryer
}

// Ensure BankAccountsTable implements IBankAccountTable at compile time.
var _ IBankAccountTable = (*BankAccountsTable)(nil)

// NewBankAccountsTable creates a BankAccountsTable over the given executor.
func NewBankAccountsTable(exec sqlexec.Queryer) *BankAccountsTable {
	return &BankAccountsTable{exec: exec}
}

const bankAccountColumns = `id, user_id, name, bank_name, account_number, initial_balance, current_balance, created_at`

func scanBankAccount(row interface{ Scan(...any) error }) (*BankAccount, error) {
	var account BankAccount
	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.BankName,
		&account.AccountNumber,
		&account.InitialBalance,
		&account.CurrentBalance,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (t *BankAccountsTable) findOne(ctx context.Context, query string, args ...any) (*BankAccount, error) {
	account, err := scanBankAccount(t.exec.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return account, err
}

// FindByID retrieves a bank account by primary key.
func (t *BankAccountsTable) FindByID(ctx context.Context, id uuid.UUID) (*BankAccount, error) {
	return t.findOne(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id = $1`, id)
}

// FindByIDForUpdate locks the row for the remainder of the surrounding
// transaction. Only meaningful when the executor is a transaction.
func (t *BankAccountsTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*BankAccount, error) {
	return t.findOne(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id = $1 FOR UPDATE`, id)
}

// FindByAccountNumber retrieves a bank account by its unique account number.
func (t *BankAccountsTable) FindByAccountNumber(ctx context.Context, accountNumber string) (*BankAccount, error) {
	return t.findOne(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE account_number = $1`, accountNumber)
}

// ListByUser returns all bank accounts owned by a user, oldest first.
func (t *BankAccountsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BankAccount, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE user_id = $1 ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*BankAccount
	for rows.Next() {
		account, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	return result, rows.Err()
}

// Insert creates a new bank account and returns its generated ID.
func (t *BankAccountsTable) Insert(ctx context.Context, create *BankAccountCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRowContext(ctx,
		`INSERT INTO bank_accounts (user_id, name, bank_name, account_number, initial_balance, current_balance)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		create.UserID, create.Name, create.BankName, create.AccountNumber,
		create.InitialBalance, create.CurrentBalance,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateCurrentBalance persists a freshly recomputed balance.
func (t *BankAccountsTable) UpdateCurrentBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	_, err := t.exec.ExecContext(ctx,
		`UPDATE bank_accounts SET current_balance = $2 WHERE id = $1`, id, balance)
	return err
}

// Delete removes a bank account. Returns false when no row matched.
func (t *BankAccountsTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
