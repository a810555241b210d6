package migrate

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/teamwallet/teamwallet/pkg/db/internal/test"
)

func TestMigrate(t *testing.T) {
	ctx := log.WithContext(context.TODO(), log.Default())
	dbx, err := test.OpenSqlite(ctx, t)
	if err != nil {
		t.Fatal(err)
	}
	if err := Migrate(ctx, dbx); err != nil {
		t.Errorf("Migrate() => %v, want nil error", err)
	}

	// Running again is a no-op.
	if err := Migrate(ctx, dbx); err != nil {
		t.Errorf("second Migrate() => %v, want nil error", err)
	}
}

func TestRollback(t *testing.T) {
	ctx := log.WithContext(context.TODO(), log.Default())
	dbx, err := test.OpenSqlite(ctx, t)
	if err != nil {
		t.Fatal(err)
	}
	if err := Migrate(ctx, dbx); err != nil {
		t.Fatal(err)
	}
	if err := Rollback(ctx, dbx); err != nil {
		t.Errorf("Rollback() => %v, want nil error", err)
	}
}
