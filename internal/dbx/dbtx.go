// Package dbx defines the minimal database surface shared by repositories so
// they can run against either a *sql.DB or a *sql.Tx.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql methods the storage layer relies on.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
