// Package backend implements the TeamWallet ledger and membership engine on
// top of the data store.
package backend

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/teamwallet/teamwallet/pkg/config"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/report"
	"github.com/teamwallet/teamwallet/pkg/store"
)

// Backend is the TeamWallet backend that handles teams, memberships, fines,
// payouts, and invites.
type Backend struct {
	ctx      context.Context
	cfg      *config.Config
	db       *db.DB
	store    store.Store
	logger   *log.Logger
	cache    *cache
	reporter report.Client
}

// New returns a new TeamWallet backend.
func New(ctx context.Context, cfg *config.Config, db *db.DB, st store.Store) *Backend {
	logger := log.FromContext(ctx).WithPrefix("backend")
	b := &Backend{
		ctx:      ctx,
		cfg:      cfg,
		db:       db,
		store:    st,
		logger:   logger,
		reporter: report.NewClient(cfg),
	}

	b.cache = newCache(b, 1000)

	return b
}

// SetReporter replaces the report client. Used by tests to install a double.
func (b *Backend) SetReporter(c report.Client) {
	b.reporter = c
}
