// Package sqlexec defines the execution surface shared by *sql.DB and *sql.Tx
// so table packages work identically inside and outside a transaction.
package sqlexec

import (
	"context"
	"database/sql"
)

type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
)
