// Package database provides database store implementations.
package database

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/teamwallet/teamwallet/pkg/config"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/store"
)

type datastore struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	logger *log.Logger

	*userStore
	*teamStore
	*membershipStore
	*fineStore
	*payoutStore
	*inviteStore
}

// New returns a new store.Store database.
func New(ctx context.Context, db *db.DB) store.Store {
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("store")

	s := &datastore{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		logger: logger,

		userStore:       &userStore{},
		teamStore:       &teamStore{},
		membershipStore: &membershipStore{},
		fineStore:       &fineStore{},
		payoutStore:     &payoutStore{},
		inviteStore:     &inviteStore{},
	}

	return s
}
