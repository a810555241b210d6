package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/teamwallet/teamwallet/pkg/config"
	logr "github.com/teamwallet/teamwallet/pkg/log"
	"github.com/teamwallet/teamwallet/pkg/version"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	ctx := context.Background()

	cfg := config.DefaultConfig()
	if cfg.Exist() {
		if err := cfg.ParseFile(); err != nil {
			log.Fatal("parse config file", "err", err)
		}
	}
	if err := cfg.ParseEnv(); err != nil {
		log.Fatal("parse environment", "err", err)
	}

	ctx = config.WithContext(ctx, cfg)

	logger, f, err := logr.NewLogger(cfg)
	if err != nil {
		log.Errorf("error creating logger: %v", err)
	}
	if f != nil {
		defer f.Close() // nolint: errcheck
	}

	// Set global logger
	log.SetDefault(logger)

	// Set the max number of processes to the number of CPUs
	// This is useful when running teamwallet in a container
	if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
		log.Warn("couldn't set automaxprocs", "err", err)
	}

	ctx = log.WithContext(ctx, logger)

	rootCmd.Version = version.Version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
