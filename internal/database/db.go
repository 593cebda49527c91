package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
)

// ErrNoRows is returned by Row.Scan when the query matched nothing,
// whichever driver produced it.
var ErrNoRows = errors.New("no rows in result set")

type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)

	// Acquire checks out one connection; callers must Release it.
	Acquire(ctx context.Context) (Conn, error)

	Dialect() Dialect
	SQLDB() *sql.DB
}

type Conn interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Release()
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Placeholder returns the n-th (1-based) bind variable for the dialect.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}
