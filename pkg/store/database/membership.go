package database

import (
	"context"
	"fmt"
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/store"
)

type membershipStore struct{}

var _ store.MembershipStore = (*membershipStore)(nil)

// CreateMembership implements store.MembershipStore.
func (s *membershipStore) CreateMembership(ctx context.Context, h db.Handler, team, user int64, role access.Role) (models.Membership, error) {
	query := h.Rebind(`INSERT INTO memberships (team_id, user_id, role, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP) RETURNING id`)
	var id int64
	if err := h.GetContext(ctx, &id, query, team, user, role); err != nil {
		return models.Membership{}, err //nolint:wrapcheck
	}

	return s.GetMembershipByID(ctx, h, id)
}

// GetMembershipByID implements store.MembershipStore.
func (*membershipStore) GetMembershipByID(ctx context.Context, h db.Handler, id int64) (models.Membership, error) {
	query := h.Rebind(`SELECT * FROM memberships WHERE id = ?`)
	var m models.Membership
	err := h.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// FindMembership implements store.MembershipStore.
func (*membershipStore) FindMembership(ctx context.Context, h db.Handler, team, user int64) (models.Membership, error) {
	query := h.Rebind(`SELECT * FROM memberships WHERE team_id = ? AND user_id = ?`)
	var m models.Membership
	err := h.GetContext(ctx, &m, query, team, user)
	return m, err //nolint:wrapcheck
}

// ListMembershipsByTeam implements store.MembershipStore.
func (*membershipStore) ListMembershipsByTeam(ctx context.Context, h db.Handler, team int64) ([]models.Membership, error) {
	query := h.Rebind(`SELECT * FROM memberships WHERE team_id = ? ORDER BY id`)
	var ms []models.Membership
	err := h.SelectContext(ctx, &ms, query, team)
	return ms, err //nolint:wrapcheck
}

// UpdateMembershipRole implements store.MembershipStore.
func (*membershipStore) UpdateMembershipRole(ctx context.Context, h db.Handler, id int64, role access.Role) error {
	query := h.Rebind(`
		UPDATE memberships
		SET
		  role = ?,
		  updated_at = CURRENT_TIMESTAMP
		WHERE
		  id = ?
	`)
	_, err := h.ExecContext(ctx, query, role, id)
	return err //nolint:wrapcheck
}

// UpdateMembershipSeen implements store.MembershipStore.
func (*membershipStore) UpdateMembershipSeen(ctx context.Context, h db.Handler, id int64, col store.SeenColumn, seenAt time.Time) error {
	switch col {
	case store.SeenDashboard, store.SeenFines, store.SeenExpenses:
	default:
		return fmt.Errorf("invalid seen column: %q", col)
	}

	query := h.Rebind(fmt.Sprintf(`
		UPDATE memberships
		SET
		  %s = ?,
		  updated_at = CURRENT_TIMESTAMP
		WHERE
		  id = ?
	`, col))
	_, err := h.ExecContext(ctx, query, seenAt.UTC(), id)
	return err //nolint:wrapcheck
}

// CountTeamAdmins implements store.MembershipStore.
func (*membershipStore) CountTeamAdmins(ctx context.Context, h db.Handler, team int64) (int64, error) {
	query := h.Rebind(`SELECT COUNT(*) FROM memberships WHERE team_id = ? AND role = ?`)
	var count int64
	err := h.GetContext(ctx, &count, query, team, access.Admin)
	return count, err //nolint:wrapcheck
}

// DeleteMembershipByID implements store.MembershipStore.
func (*membershipStore) DeleteMembershipByID(ctx context.Context, h db.Handler, id int64) error {
	query := h.Rebind(`DELETE FROM memberships WHERE id = ?`)
	_, err := h.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}
