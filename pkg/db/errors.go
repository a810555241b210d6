package db

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

var (
	// ErrRecordNotFound is returned when a record is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = errors.New("duplicate key value")
)

// WrapError normalizes driver errors into package sentinels so callers can
// match with errors.Is regardless of the underlying database.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ErrDuplicateKey
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// unique_violation
		if pqErr.Code == "23505" {
			return ErrDuplicateKey
		}
	}

	// Fallback for drivers that only expose the message.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateKey
	}

	return err
}
