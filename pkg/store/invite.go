package store

import (
	"context"
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
)

// InviteStore is a store for invite tokens.
type InviteStore interface {
	CreateInvite(ctx context.Context, h db.Handler, team int64, tokenHash, email string, role access.Role, createdBy int64, expiresAt time.Time) (models.Invite, error)
	GetInviteByID(ctx context.Context, h db.Handler, id int64) (models.Invite, error)
	GetInviteByTokenHash(ctx context.Context, h db.Handler, tokenHash string) (models.Invite, error)
	ListInvitesByTeam(ctx context.Context, h db.Handler, team int64) ([]models.Invite, error)
	// ConsumeInvite conditionally marks the invite consumed. It reports false
	// without error when the invite was already consumed, so racing
	// acceptances see at most one success.
	ConsumeInvite(ctx context.Context, h db.Handler, id int64, consumedAt time.Time) (bool, error)
	DeleteInviteByID(ctx context.Context, h db.Handler, id int64) error
	// DeleteExpiredInvites purges unconsumed invites whose expiry is at or
	// before now. It returns the number of deleted rows.
	DeleteExpiredInvites(ctx context.Context, h db.Handler, now time.Time) (int64, error)
}
