package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/teamwallet/teamwallet/pkg/config"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/migrate"
)

var serveCmd = &cobra.Command{
	Use:                "serve",
	Short:              "Start the server",
	Args:               cobra.NoArgs,
	PersistentPreRunE:  initServeContext,
	PersistentPostRunE: closeDBContext,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		dbx := db.FromContext(ctx)
		if err := migrate.Migrate(ctx, dbx); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}

		s, err := NewServer(ctx)
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}

		lch := make(chan error, 1)
		done := make(chan os.Signal, 1)
		doneOnce := sync.OnceFunc(func() { close(done) })

		signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			lch <- s.Start()
			doneOnce()
		}()

		select {
		case err := <-lch:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
		case <-done:
		}

		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return s.Shutdown(ctx)
	},
}

// initServeContext prepares the config on disk before the backend context is
// built. A fresh install gets a config file and a generated session secret.
func initServeContext(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)

	if cfg.Auth.SessionSecret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("generate session secret: %w", err)
		}
		cfg.Auth.SessionSecret = hex.EncodeToString(buf)
		if err := cfg.WriteConfig(); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	} else if !cfg.Exist() {
		if err := cfg.WriteConfig(); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	}

	// Create log directory if it doesn't exist
	logPath := filepath.Join(cfg.DataPath, "log")
	if _, err := os.Stat(logPath); err != nil && os.IsNotExist(err) {
		os.MkdirAll(logPath, os.ModePerm) //nolint:errcheck
	}

	return initBackendContext(cmd, args)
}
