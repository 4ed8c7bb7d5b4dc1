package ledger

import (
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrNilAccount is returned when Recompute is given no account to reconcile.
var ErrNilAccount = errors.New("ledger: nil account")

// Task status lifecycle. Only completed tasks affect the balance.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// CategoryIncome is the only category that credits an account. Every other
// category is treated as an expense.
const CategoryIncome = "income"

// Account carries the inputs the engine needs from a bank account.
type Account struct {
	ID             uuid.UUID
	InitialBalance decimal.Decimal
}

// Task carries the inputs the engine needs from a money task.
type Task struct {
	Amount   decimal.Decimal
	Category string
	Status   string
}

// Summary is the full breakdown of one reconciliation pass.
type Summary struct {
	InitialBalance   decimal.Decimal
	CompletedIncome  decimal.Decimal
	CompletedExpense decimal.Decimal
	CurrentBalance   decimal.Decimal
}

// Recompute derives an account's current balance from its initial balance and
// the complete set of tasks referencing it:
//
//	current = initial + Σ(completed income) − Σ(completed non-income)
//
// It is pure and idempotent. Callers must re-run it after every task mutation
// rather than patching the stored balance incrementally; incremental patching
// double-counts when a status flips more than once or two edits race.
func Recompute(account *Account, tasks []Task) (decimal.Decimal, error) {
	summary, err := Reconcile(account, tasks)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return summary.CurrentBalance, nil
}

// Reconcile performs the same computation as Recompute but returns the full
// breakdown, used by the reconciliation report.
func Reconcile(account *Account, tasks []Task) (*Summary, error) {
	if account == nil {
		return nil, ErrNilAccount
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, task := range tasks {
		if task.Status != StatusCompleted {
			continue
		}
		amount := coerceAmount(task.Amount)
		if task.Category == CategoryIncome {
			income = income.Add(amount)
		} else {
			expense = expense.Add(amount)
		}
	}

	return &Summary{
		InitialBalance:   account.InitialBalance,
		CompletedIncome:  income,
		CompletedExpense: expense,
		CurrentBalance:   account.InitialBalance.Add(income).Sub(expense),
	}, nil
}

// coerceAmount treats negative amounts as zero so a corrupt row can never
// invert the income/expense direction of a task.
func coerceAmount(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
