package database

import (
	"context"
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/store"
)

type inviteStore struct{}

var _ store.InviteStore = (*inviteStore)(nil)

// CreateInvite implements store.InviteStore.
func (s *inviteStore) CreateInvite(ctx context.Context, h db.Handler, team int64, tokenHash, email string, role access.Role, createdBy int64, expiresAt time.Time) (models.Invite, error) {
	query := h.Rebind(`INSERT INTO invites (team_id, token_hash, email, role, created_by, expires_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP) RETURNING id`)
	var id int64
	if err := h.GetContext(ctx, &id, query, team, tokenHash, email, role, createdBy, expiresAt.UTC()); err != nil {
		return models.Invite{}, err //nolint:wrapcheck
	}

	return s.getInviteByID(ctx, h, id)
}

// GetInviteByID implements store.InviteStore.
func (s *inviteStore) GetInviteByID(ctx context.Context, h db.Handler, id int64) (models.Invite, error) {
	return s.getInviteByID(ctx, h, id)
}

func (*inviteStore) getInviteByID(ctx context.Context, h db.Handler, id int64) (models.Invite, error) {
	query := h.Rebind(`SELECT * FROM invites WHERE id = ?`)
	var m models.Invite
	err := h.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// GetInviteByTokenHash implements store.InviteStore.
func (*inviteStore) GetInviteByTokenHash(ctx context.Context, h db.Handler, tokenHash string) (models.Invite, error) {
	query := h.Rebind(`SELECT * FROM invites WHERE token_hash = ?`)
	var m models.Invite
	err := h.GetContext(ctx, &m, query, tokenHash)
	return m, err //nolint:wrapcheck
}

// ListInvitesByTeam implements store.InviteStore.
func (*inviteStore) ListInvitesByTeam(ctx context.Context, h db.Handler, team int64) ([]models.Invite, error) {
	query := h.Rebind(`SELECT * FROM invites WHERE team_id = ? ORDER BY id`)
	var ms []models.Invite
	err := h.SelectContext(ctx, &ms, query, team)
	return ms, err //nolint:wrapcheck
}

// ConsumeInvite implements store.InviteStore.
// The update is conditional on the invite being unconsumed so that two
// devices racing to accept the same token see at most one success.
func (*inviteStore) ConsumeInvite(ctx context.Context, h db.Handler, id int64, consumedAt time.Time) (bool, error) {
	query := h.Rebind(`
		UPDATE invites
		SET
		  consumed_at = ?,
		  updated_at = CURRENT_TIMESTAMP
		WHERE
		  id = ?
		  AND consumed_at IS NULL
	`)
	res, err := h.ExecContext(ctx, query, consumedAt.UTC(), id)
	if err != nil {
		return false, err //nolint:wrapcheck
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err //nolint:wrapcheck
	}
	return n == 1, nil
}

// DeleteInviteByID implements store.InviteStore.
func (*inviteStore) DeleteInviteByID(ctx context.Context, h db.Handler, id int64) error {
	query := h.Rebind(`DELETE FROM invites WHERE id = ?`)
	_, err := h.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}

// DeleteExpiredInvites implements store.InviteStore.
func (*inviteStore) DeleteExpiredInvites(ctx context.Context, h db.Handler, now time.Time) (int64, error) {
	query := h.Rebind(`DELETE FROM invites WHERE consumed_at IS NULL AND expires_at <= ?`)
	res, err := h.ExecContext(ctx, query, now.UTC())
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return res.RowsAffected() //nolint:wrapcheck
}
