// Package questdb provides the collector's QuestDB access layer, speaking
// the postgres wire protocol through a shared pgx connection pool.
package questdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// QuestDBClient is the storage surface the repositories depend on.
type QuestDBClient interface {
	// Single-statement operations.
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (RowsInterface, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row

	// CopyFrom bulk-loads rows over the wire protocol's COPY path.
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)

	// Connection management.
	Ping(ctx context.Context) error
	Close()

	// Pool exposes the underlying pool for operations the interface does
	// not cover.
	Pool() *pgxpool.Pool
}

// RowsInterface is the subset of pgx.Rows the repositories consume, narrowed
// so result iteration can be mocked.
type RowsInterface interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

type rowsWrapper struct {
	rows pgx.Rows
}

func newRows(rows pgx.Rows) RowsInterface {
	return &rowsWrapper{rows: rows}
}

func (r *rowsWrapper) Next() bool {
	return r.rows.Next()
}

func (r *rowsWrapper) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *rowsWrapper) Close() {
	r.rows.Close()
}

func (r *rowsWrapper) Err() error {
	return r.rows.Err()
}
