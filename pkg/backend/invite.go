package backend

import (
	"context"
	"errors"
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

// CreateInvite mints a single-use invite token valid for proto.InviteDuration.
// Invites grant member or vice-admin at acceptance; the admin role is never
// grantable through a token. The opaque token is returned exactly once and
// only its hash is stored.
func (b *Backend) CreateInvite(ctx context.Context, actor proto.User, teamID int64, email string, role access.Role) (proto.Invite, string, error) {
	if role == access.Admin {
		return proto.Invite{}, "", proto.ErrUnauthorized
	}

	token := GenerateToken()
	if token == "" {
		return proto.Invite{}, "", proto.ErrInviteInvalid
	}

	var m models.Invite
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		creator, err := b.membership(ctx, tx, actor, teamID)
		if err != nil {
			return err
		}
		if !creator.Role.Can(access.CreateInvite) {
			return proto.ErrUnauthorized
		}

		m, err = b.store.CreateInvite(ctx, tx, teamID, HashToken(token), email, role,
			creator.ID, time.Now().Add(proto.InviteDuration))
		return db.WrapError(err)
	}); err != nil {
		return proto.Invite{}, "", err
	}

	return inviteFromModel(m), token, nil
}

// ResolveInvite previews the team behind a token without consuming it. An
// unknown, consumed, or expired token yields proto.ErrInviteInvalid; callers
// learn nothing about which of the three it was.
func (b *Backend) ResolveInvite(ctx context.Context, token string) (proto.Invite, proto.Team, error) {
	invite, err := b.store.GetInviteByTokenHash(ctx, b.db, HashToken(token))
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return proto.Invite{}, proto.Team{}, proto.ErrInviteInvalid
		}
		return proto.Invite{}, proto.Team{}, db.WrapError(err)
	}
	if invite.ConsumedAt.Valid || !time.Now().Before(invite.ExpiresAt) {
		return proto.Invite{}, proto.Team{}, proto.ErrInviteInvalid
	}

	team, err := b.store.GetTeamByID(ctx, b.db, invite.TeamID)
	if err != nil {
		return proto.Invite{}, proto.Team{}, db.WrapError(err)
	}

	return inviteFromModel(invite), teamFromModel(team), nil
}

// AcceptInvite redeems a token and joins the actor to the team at the
// invite's role. Redeeming is atomic: of any number of racing acceptances,
// exactly one consumes the token. Accepting a token for a team the actor
// already belongs to still consumes it and returns the existing membership
// unchanged.
func (b *Backend) AcceptInvite(ctx context.Context, actor proto.User, token string) (proto.Membership, error) {
	var m models.Membership
	var joined bool
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		invite, err := b.store.GetInviteByTokenHash(ctx, tx, HashToken(token))
		if err != nil {
			if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
				return proto.ErrInviteInvalid
			}
			return db.WrapError(err)
		}
		if invite.ConsumedAt.Valid || !time.Now().Before(invite.ExpiresAt) {
			return proto.ErrInviteInvalid
		}

		ok, err := b.store.ConsumeInvite(ctx, tx, invite.ID, time.Now())
		if err != nil {
			return db.WrapError(err)
		}
		if !ok {
			return proto.ErrInviteInvalid
		}

		m, err = b.store.FindMembership(ctx, tx, invite.TeamID, actor.ID())
		if err == nil {
			return nil
		}
		if !errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return db.WrapError(err)
		}

		m, err = b.store.CreateMembership(ctx, tx, invite.TeamID, actor.ID(), invite.Role)
		if err != nil {
			return db.WrapError(err)
		}
		joined = true
		return nil
	}); err != nil {
		return proto.Membership{}, err
	}

	if joined {
		invitesAcceptedCounter.Inc()
	}
	return membershipFromModel(m), nil
}

// ListInvites lists a team's invites. Requires admin or vice-admin.
func (b *Backend) ListInvites(ctx context.Context, actor proto.User, teamID int64) ([]proto.Invite, error) {
	if err := b.authorize(ctx, b.db, actor, teamID, access.CreateInvite); err != nil {
		return nil, err
	}

	ms, err := b.store.ListInvitesByTeam(ctx, b.db, teamID)
	if err != nil {
		return nil, db.WrapError(err)
	}

	invites := make([]proto.Invite, 0, len(ms))
	for _, m := range ms {
		invites = append(invites, inviteFromModel(m))
	}
	return invites, nil
}

// RevokeInvite deletes an invite before it is redeemed.
func (b *Backend) RevokeInvite(ctx context.Context, actor proto.User, teamID, inviteID int64) error {
	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.authorize(ctx, tx, actor, teamID, access.CreateInvite); err != nil {
			return err
		}

		invite, err := b.store.GetInviteByID(ctx, tx, inviteID)
		if err != nil || invite.TeamID != teamID {
			if err == nil || errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
				return proto.ErrInviteInvalid
			}
			return err //nolint:wrapcheck
		}

		return db.WrapError(b.store.DeleteInviteByID(ctx, tx, invite.ID))
	})
}

// SweepExpiredInvites purges unconsumed invites past their expiry. It is run
// periodically by the invite sweep job.
func (b *Backend) SweepExpiredInvites(ctx context.Context) (int64, error) {
	n, err := b.store.DeleteExpiredInvites(ctx, b.db, time.Now())
	if err != nil {
		return 0, db.WrapError(err)
	}
	if n > 0 {
		b.logger.Debug("swept expired invites", "count", n)
	}
	return n, nil
}
