package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/proto"
	"github.com/teamwallet/teamwallet/pkg/store"
)

// TeamMembers lists a team's memberships.
func (b *Backend) TeamMembers(ctx context.Context, actor proto.User, teamID int64) ([]proto.Membership, error) {
	if _, err := b.membership(ctx, b.db, actor, teamID); err != nil {
		return nil, err
	}

	ms, err := b.store.ListMembershipsByTeam(ctx, b.db, teamID)
	if err != nil {
		return nil, db.WrapError(err)
	}

	members := make([]proto.Membership, 0, len(ms))
	for _, m := range ms {
		members = append(members, membershipFromModel(m))
	}
	return members, nil
}

// ChangeRole sets a member's role. Requires admin. Demoting the last
// remaining admin is rejected with proto.ErrLastAdmin so a team can never
// end up without one.
func (b *Backend) ChangeRole(ctx context.Context, actor proto.User, teamID, membershipID int64, role access.Role) (proto.Membership, error) {
	var m models.Membership
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.authorize(ctx, tx, actor, teamID, access.ChangeRole); err != nil {
			return err
		}

		target, err := b.teamMembership(ctx, tx, teamID, membershipID)
		if err != nil {
			return err
		}

		if target.Role == access.Admin && role != access.Admin {
			admins, err := b.store.CountTeamAdmins(ctx, tx, teamID)
			if err != nil {
				return db.WrapError(err)
			}
			if admins <= 1 {
				return proto.ErrLastAdmin
			}
		}

		if err := b.store.UpdateMembershipRole(ctx, tx, target.ID, role); err != nil {
			return db.WrapError(err)
		}

		m, err = b.store.GetMembershipByID(ctx, tx, target.ID)
		return db.WrapError(err)
	}); err != nil {
		return proto.Membership{}, err
	}

	return membershipFromModel(m), nil
}

// RemoveMember removes a membership. Admins can remove anyone; every member
// can remove themselves (leave the team). Removing the last admin is
// rejected with proto.ErrLastAdmin.
func (b *Backend) RemoveMember(ctx context.Context, actor proto.User, teamID, membershipID int64) error {
	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		self, err := b.membership(ctx, tx, actor, teamID)
		if err != nil {
			return err
		}

		target, err := b.teamMembership(ctx, tx, teamID, membershipID)
		if err != nil {
			return err
		}

		if target.ID != self.ID && !self.Role.Can(access.RemoveMember) {
			return proto.ErrUnauthorized
		}

		if target.Role == access.Admin {
			admins, err := b.store.CountTeamAdmins(ctx, tx, teamID)
			if err != nil {
				return db.WrapError(err)
			}
			if admins <= 1 {
				return proto.ErrLastAdmin
			}
		}

		return db.WrapError(b.store.DeleteMembershipByID(ctx, tx, target.ID))
	})
}

// MarkSeen advances the actor's last-seen watermark for one notification
// category to now.
func (b *Backend) MarkSeen(ctx context.Context, actor proto.User, teamID int64, category proto.NotificationCategory) error {
	col, err := seenColumn(category)
	if err != nil {
		return err
	}

	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		m, err := b.membership(ctx, tx, actor, teamID)
		if err != nil {
			return err
		}

		return db.WrapError(b.store.UpdateMembershipSeen(ctx, tx, m.ID, col, time.Now()))
	})
}

// Unread reports which notification categories have activity strictly newer
// than the actor's watermarks. Fine activity feeds the fines badge; payout
// activity feeds the dashboard and expenses badges.
func (b *Backend) Unread(ctx context.Context, actor proto.User, teamID int64) (proto.Unread, error) {
	m, err := b.membership(ctx, b.db, actor, teamID)
	if err != nil {
		return proto.Unread{}, err
	}

	latestFine, err := b.store.LatestFineAt(ctx, b.db, teamID)
	if err != nil {
		return proto.Unread{}, db.WrapError(err)
	}
	latestPayout, err := b.store.LatestPayoutAt(ctx, b.db, teamID)
	if err != nil {
		return proto.Unread{}, db.WrapError(err)
	}

	return proto.Unread{
		Dashboard: latestPayout.After(m.DashboardSeenAt),
		Fines:     latestFine.After(m.FinesSeenAt),
		Expenses:  latestPayout.After(m.ExpensesSeenAt),
	}, nil
}

func (b *Backend) teamMembership(ctx context.Context, h db.Handler, teamID, membershipID int64) (models.Membership, error) {
	m, err := b.store.GetMembershipByID(ctx, h, membershipID)
	if err != nil || m.TeamID != teamID {
		if err == nil || errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.Membership{}, proto.ErrMemberNotFound
		}
		return models.Membership{}, err //nolint:wrapcheck
	}
	return m, nil
}

func seenColumn(category proto.NotificationCategory) (store.SeenColumn, error) {
	switch category {
	case proto.NotifyDashboard:
		return store.SeenDashboard, nil
	case proto.NotifyFines:
		return store.SeenFines, nil
	case proto.NotifyExpenses:
		return store.SeenExpenses, nil
	default:
		return "", fmt.Errorf("unknown notification category %d", category)
	}
}
