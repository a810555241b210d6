package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "modernc.org/sqlite"          // sqlite driver
)

// DB is the database connection.
type DB struct {
	*sqlx.DB
	logger *log.Logger
}

// Tx is a database transaction.
type Tx struct {
	*sqlx.Tx
	logger *log.Logger
}

var (
	_ Handler = (*DB)(nil)
	_ Handler = (*Tx)(nil)
)

// Open opens a database connection.
func Open(ctx context.Context, driverName string, dsn string) (*DB, error) {
	var logger *log.Logger
	if l := log.FromContext(ctx); l != nil {
		logger = l.WithPrefix("db")
	}

	switch driverName {
	case driverSQLite, driverSQLite3, driverPostgres:
	default:
		return nil, fmt.Errorf("unknown driver: %q", driverName)
	}

	dbx, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driverName, err)
	}

	d := &DB{
		DB:     dbx,
		logger: logger,
	}

	if driverName == driverSQLite || driverName == driverSQLite3 {
		// Multiple writers on one sqlite file trip SQLITE_BUSY otherwise.
		d.SetMaxOpenConns(1)
		for _, pragma := range []string{
			"PRAGMA foreign_keys = ON;",
			"PRAGMA busy_timeout = 5000;",
			"PRAGMA journal_mode = WAL;",
		} {
			if _, err := d.ExecContext(ctx, pragma); err != nil {
				return nil, fmt.Errorf("sqlite pragma: %w", err)
			}
		}
	}

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.DB.Close() //nolint:wrapcheck
}

// Transaction executes the given function within a database transaction.
func (d *DB) Transaction(fn func(tx *Tx) error) error {
	return d.TransactionContext(context.Background(), fn)
}

// TransactionContext executes the given function within a database
// transaction. The transaction is rolled back if the function returns an
// error or panics, and committed otherwise.
func (d *DB) TransactionContext(ctx context.Context, fn func(tx *Tx) error) (err error) {
	txx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	tx := &Tx{Tx: txx, logger: d.logger}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
				err = errors.Join(err, rerr)
			}
			return
		}
		err = tx.Commit()
	}()

	return fn(tx)
}
