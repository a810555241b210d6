package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/migrate"
)

var migrateCmd = &cobra.Command{
	Use:                "migrate",
	Short:              "Run database migrations",
	Args:               cobra.NoArgs,
	PersistentPreRunE:  initBackendContext,
	PersistentPostRunE: closeDBContext,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		dbx := db.FromContext(ctx)
		if err := migrate.Migrate(ctx, dbx); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
		return nil
	},
}

var migrateRollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Roll back the last database migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		dbx := db.FromContext(ctx)
		if err := migrate.Rollback(ctx, dbx); err != nil {
			return fmt.Errorf("rollback error: %w", err)
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateRollbackCmd)
}
