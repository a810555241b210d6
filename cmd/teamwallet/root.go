package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/teamwallet/teamwallet/pkg/backend"
	"github.com/teamwallet/teamwallet/pkg/config"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/store"
	"github.com/teamwallet/teamwallet/pkg/store/database"
	"github.com/teamwallet/teamwallet/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:          "teamwallet",
	Short:        "A shared cash box for teams",
	Long:         "TeamWallet manages a team's shared cash box: fines, payouts, and the ledger derived from them.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(
		serveCmd,
		migrateCmd,
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(version.CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + version.CommitSHA[0:7] + ")\n")
	}
	if version.Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			version.Version = info.Main.Version
		} else {
			version.Version = "unknown (built from source)"
		}
	}
}

// initBackendContext opens the database and attaches the store and backend
// to the command context.
func initBackendContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	if _, err := os.Stat(cfg.DataPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(cfg.DataPath, os.ModePerm); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	dbx, err := db.Open(ctx, cfg.DB.Driver, cfg.DB.DataSource)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	ctx = db.WithContext(ctx, dbx)
	dbstore := database.New(ctx, dbx)
	ctx = store.WithContext(ctx, dbstore)
	be := backend.New(ctx, cfg, dbx, dbstore)
	ctx = backend.WithContext(ctx, be)

	cmd.SetContext(ctx)

	return nil
}

// closeDBContext closes the database attached to the command context.
func closeDBContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	dbx := db.FromContext(ctx)
	if dbx != nil {
		if err := dbx.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}

	return nil
}
