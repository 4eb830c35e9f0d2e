package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// RowIter is a lazy finite sequence of dataset names returned by a
// catalog query. Next must be called before the first Name/Err access,
// following the database/sql.Rows convention the teacher's own
// sqlite-pib backend uses.
type RowIter interface {
	// Next advances to the next row, returning false at end of stream
	// or on error (check Err to tell the two apart).
	Next() bool
	// Name returns the current row's dataset name.
	Name() string
	// Err returns the first error encountered while scanning, if any.
	Err() error
	// Close releases the resources held by the iterator.
	Close() error
}

// Backend executes catalog SQL and returns a lazy row stream. This is
// the Go interface standing in for the source's compile-time
// DatabaseHandler type parameter (see spec.md, "Polymorphism over
// backends").
type Backend interface {
	// Query runs sql against the catalog table and returns a row
	// stream of dataset names, or an error if the query could not be
	// started. A nil RowIter with a nil error is treated the same as
	// the source's NULL MYSQL_RES: an execution failure.
	Query(ctx context.Context, sqlText string) (RowIter, error)
	// Close releases backend resources (connection pool, etc).
	Close() error
}

// SQLBackend is a Backend implementation over database/sql, used with
// the MySQL wire protocol driver to reach the networked catalog
// database named by Config.Database.
type SQLBackend struct {
	db *sql.DB
}

// NewSQLBackend opens a connection pool to the catalog database. The
// driver is selected by cfg.Driver; "mysql" (the default) uses
// github.com/go-sql-driver/mysql, imported above for its side-effecting
// driver registration, the same pattern the teacher's sqlite-pib uses
// for github.com/mattn/go-sqlite3.
func NewSQLBackend(cfg DatabaseConfig) (*SQLBackend, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		cfg.DbUser, cfg.DbPasswd, cfg.DbServer, cfg.DbName)

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	return &SQLBackend{db: db}, nil
}

func (b *SQLBackend) Query(ctx context.Context, sqlText string) (RowIter, error) {
	rows, err := b.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	return &sqlRowIter{rows: rows}, nil
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}

type sqlRowIter struct {
	rows *sql.Rows
	name string
	err  error
}

func (it *sqlRowIter) Next() bool {
	if !it.rows.Next() {
		return false
	}
	if err := it.rows.Scan(&it.name); err != nil {
		it.err = err
		return false
	}
	return true
}

func (it *sqlRowIter) Name() string {
	return it.name
}

func (it *sqlRowIter) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.rows.Err()
}

func (it *sqlRowIter) Close() error {
	return it.rows.Close()
}

// MemBackend is an in-memory Backend usable as the "no-op default" for
// tests, matching spec.md §9's request for a capability set with a
// relational implementation and a test double. It answers every query
// with a fixed row set, ignoring the SQL text, the way a unit test
// fixture naturally would.
type MemBackend struct {
	Rows []string
	// Fail, if non-nil, is returned by Query for every call.
	Fail error
}

func NewMemBackend(rows ...string) *MemBackend {
	return &MemBackend{Rows: rows}
}

func (b *MemBackend) Query(_ context.Context, _ string) (RowIter, error) {
	if b.Fail != nil {
		return nil, b.Fail
	}
	return &memRowIter{rows: b.Rows, i: -1}, nil
}

func (b *MemBackend) Close() error {
	return nil
}

type memRowIter struct {
	rows []string
	i    int
}

func (it *memRowIter) Next() bool {
	it.i++
	return it.i < len(it.rows)
}

func (it *memRowIter) Name() string {
	return it.rows[it.i]
}

func (it *memRowIter) Err() error {
	return nil
}

func (it *memRowIter) Close() error {
	return nil
}
