package backend

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

// RecordPayout records an outgoing treasury expense. The amount must be
// strictly positive. Requires admin or vice-admin.
func (b *Backend) RecordPayout(ctx context.Context, actor proto.User, teamID int64, amount currency.Amount, purpose string) (proto.Payout, error) {
	if !amount.IsPositive() {
		return proto.Payout{}, currency.ErrInvalidAmount
	}

	var m models.Payout
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		recorder, err := b.membership(ctx, tx, actor, teamID)
		if err != nil {
			return err
		}
		if !recorder.Role.Can(access.RecordPayout) {
			return proto.ErrUnauthorized
		}

		m, err = b.store.CreatePayout(ctx, tx, uuid.New(), teamID, amount.Cents(), purpose, recorder.ID)
		return db.WrapError(err)
	}); err != nil {
		return proto.Payout{}, err
	}

	payoutsCounter.Inc()
	return payoutFromModel(m), nil
}

// DeletePayout removes a payout. The derived ledger retracts its effect.
func (b *Backend) DeletePayout(ctx context.Context, actor proto.User, teamID, payoutID int64) error {
	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.authorize(ctx, tx, actor, teamID, access.DeletePayout); err != nil {
			return err
		}

		payout, err := b.store.GetPayoutByID(ctx, tx, payoutID)
		if err != nil || payout.TeamID != teamID {
			if err == nil || errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
				return proto.ErrPayoutNotFound
			}
			return err //nolint:wrapcheck
		}

		return db.WrapError(b.store.DeletePayoutByID(ctx, tx, payout.ID))
	})
}

// ListPayouts lists all payouts for a team.
func (b *Backend) ListPayouts(ctx context.Context, actor proto.User, teamID int64) ([]proto.Payout, error) {
	if _, err := b.membership(ctx, b.db, actor, teamID); err != nil {
		return nil, err
	}

	ms, err := b.store.ListPayoutsByTeam(ctx, b.db, teamID)
	if err != nil {
		return nil, db.WrapError(err)
	}
	return payoutsFromModels(ms), nil
}
