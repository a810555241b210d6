package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestWrapErrorBadNoRows(t *testing.T) {
	for _, e := range []error{
		fmt.Errorf("foo"),
		errors.New("bar"),
	} {
		if err := WrapError(e); err != e {
			t.Errorf("WrapError(%v) => %v, want %v", e, err, e)
		}
	}
}

func TestWrapErrorGoodNoRows(t *testing.T) {
	if err := WrapError(sql.ErrNoRows); err != ErrRecordNotFound {
		t.Errorf("WrapError(sql.ErrNoRows) => %v, want %v", err, ErrRecordNotFound)
	}
}

func TestWrapErrorNil(t *testing.T) {
	if err := WrapError(nil); err != nil {
		t.Errorf("WrapError(nil) => %v, want nil", err)
	}
}

func TestWrapErrorUniqueMessage(t *testing.T) {
	e := errors.New("UNIQUE constraint failed: memberships.team_id, memberships.user_id")
	if err := WrapError(e); err != ErrDuplicateKey {
		t.Errorf("WrapError(%v) => %v, want %v", e, err, ErrDuplicateKey)
	}
}
