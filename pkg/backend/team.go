package backend

import (
	"context"
	"errors"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/proto"
	"github.com/teamwallet/teamwallet/pkg/utils"
)

// CreateTeam creates a new team with the owner as its admin member.
func (b *Backend) CreateTeam(ctx context.Context, owner proto.User, name string) (proto.Team, error) {
	if err := utils.ValidateTeamName(name); err != nil {
		return proto.Team{}, err //nolint:wrapcheck
	}

	var m models.Team
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		m, err = b.store.CreateTeam(ctx, tx, owner.ID(), name)
		if err != nil {
			return db.WrapError(err)
		}

		_, err = b.store.CreateMembership(ctx, tx, m.ID, owner.ID(), access.Admin)
		return db.WrapError(err)
	}); err != nil {
		return proto.Team{}, err
	}

	return teamFromModel(m), nil
}

// Team returns a team the actor is a member of.
func (b *Backend) Team(ctx context.Context, actor proto.User, teamID int64) (proto.Team, error) {
	if _, err := b.membership(ctx, b.db, actor, teamID); err != nil {
		return proto.Team{}, err
	}

	m, err := b.store.GetTeamByID(ctx, b.db, teamID)
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return proto.Team{}, proto.ErrTeamNotFound
		}
		return proto.Team{}, err //nolint:wrapcheck
	}

	return teamFromModel(m), nil
}

// ListTeams lists the teams the actor belongs to.
func (b *Backend) ListTeams(ctx context.Context, actor proto.User) ([]proto.Team, error) {
	ms, err := b.store.ListTeamsByUserID(ctx, b.db, actor.ID())
	if err != nil {
		return nil, db.WrapError(err)
	}

	teams := make([]proto.Team, 0, len(ms))
	for _, m := range ms {
		teams = append(teams, teamFromModel(m))
	}
	return teams, nil
}

// UpdateTeam updates team settings. Requires the admin role.
func (b *Backend) UpdateTeam(ctx context.Context, actor proto.User, teamID int64, name string, premium bool, paymentHandle string) (proto.Team, error) {
	if err := utils.ValidateTeamName(name); err != nil {
		return proto.Team{}, err //nolint:wrapcheck
	}

	var m models.Team
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.authorize(ctx, tx, actor, teamID, access.ManageTeam); err != nil {
			return err
		}

		if err := b.store.UpdateTeam(ctx, tx, teamID, name, premium, paymentHandle); err != nil {
			return db.WrapError(err)
		}

		var err error
		m, err = b.store.GetTeamByID(ctx, tx, teamID)
		return db.WrapError(err)
	}); err != nil {
		return proto.Team{}, err
	}

	return teamFromModel(m), nil
}

// DeleteTeam deletes a team along with its memberships, fines, payouts, and
// invites. Requires the admin role.
func (b *Backend) DeleteTeam(ctx context.Context, actor proto.User, teamID int64) error {
	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.authorize(ctx, tx, actor, teamID, access.ManageTeam); err != nil {
			return err
		}

		return db.WrapError(b.store.DeleteTeamByID(ctx, tx, teamID))
	})
}

// membership resolves the actor's membership in the team, with the freshest
// available data. Non-members get proto.ErrUnauthorized.
func (b *Backend) membership(ctx context.Context, h db.Handler, actor proto.User, teamID int64) (models.Membership, error) {
	m, err := b.store.FindMembership(ctx, h, teamID, actor.ID())
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.Membership{}, proto.ErrUnauthorized
		}
		return models.Membership{}, err //nolint:wrapcheck
	}
	return m, nil
}

// authorize checks that the actor is a member of the team and the member's
// role allows the action. Every mutating operation calls this before
// touching records.
func (b *Backend) authorize(ctx context.Context, h db.Handler, actor proto.User, teamID int64, action access.Action) error {
	m, err := b.membership(ctx, h, actor, teamID)
	if err != nil {
		return err
	}
	if !m.Role.Can(action) {
		return proto.ErrUnauthorized
	}
	return nil
}
