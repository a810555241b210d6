package backend

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

// CreateFineDefinition adds a catalog entry. Requires admin or vice-admin.
func (b *Backend) CreateFineDefinition(ctx context.Context, actor proto.User, teamID int64, name, description string, amount currency.Amount) (proto.FineDefinition, error) {
	if amount.IsNegative() {
		return proto.FineDefinition{}, currency.ErrInvalidAmount
	}

	var m models.FineDefinition
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.authorize(ctx, tx, actor, teamID, access.ManageCatalog); err != nil {
			return err
		}

		var err error
		m, err = b.store.CreateFineDefinition(ctx, tx, teamID, name, description, amount.Cents())
		return db.WrapError(err)
	}); err != nil {
		return proto.FineDefinition{}, err
	}

	return definitionFromModel(m), nil
}

// UpdateFineDefinition edits a catalog entry. Issued fines keep their
// snapshot and are unaffected.
func (b *Backend) UpdateFineDefinition(ctx context.Context, actor proto.User, teamID, definitionID int64, name, description string, amount currency.Amount) (proto.FineDefinition, error) {
	if amount.IsNegative() {
		return proto.FineDefinition{}, currency.ErrInvalidAmount
	}

	var m models.FineDefinition
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.authorize(ctx, tx, actor, teamID, access.ManageCatalog); err != nil {
			return err
		}

		def, err := b.teamDefinition(ctx, tx, teamID, definitionID)
		if err != nil {
			return err
		}

		if err := b.store.UpdateFineDefinition(ctx, tx, def.ID, name, description, amount.Cents()); err != nil {
			return db.WrapError(err)
		}

		m, err = b.store.GetFineDefinitionByID(ctx, tx, def.ID)
		return db.WrapError(err)
	}); err != nil {
		return proto.FineDefinition{}, err
	}

	return definitionFromModel(m), nil
}

// DeleteFineDefinition removes a catalog entry. Fines issued from it keep
// their amount and reason snapshots.
func (b *Backend) DeleteFineDefinition(ctx context.Context, actor proto.User, teamID, definitionID int64) error {
	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.authorize(ctx, tx, actor, teamID, access.ManageCatalog); err != nil {
			return err
		}

		def, err := b.teamDefinition(ctx, tx, teamID, definitionID)
		if err != nil {
			return err
		}

		return db.WrapError(b.store.DeleteFineDefinitionByID(ctx, tx, def.ID))
	})
}

// ListFineDefinitions lists the catalog for a team.
func (b *Backend) ListFineDefinitions(ctx context.Context, actor proto.User, teamID int64) ([]proto.FineDefinition, error) {
	if _, err := b.membership(ctx, b.db, actor, teamID); err != nil {
		return nil, err
	}

	ms, err := b.store.ListFineDefinitionsByTeam(ctx, b.db, teamID)
	if err != nil {
		return nil, db.WrapError(err)
	}

	defs := make([]proto.FineDefinition, 0, len(ms))
	for _, m := range ms {
		defs = append(defs, definitionFromModel(m))
	}
	return defs, nil
}

// IssueFine issues a fine to a member, snapshotting the amount and reason
// from the catalog definition at call time. Requires admin or vice-admin.
func (b *Backend) IssueFine(ctx context.Context, actor proto.User, teamID, membershipID, definitionID int64) (proto.Fine, error) {
	var m models.Fine
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		issuer, err := b.membership(ctx, tx, actor, teamID)
		if err != nil {
			return err
		}
		if !issuer.Role.Can(access.IssueFine) {
			return proto.ErrUnauthorized
		}

		def, err := b.teamDefinition(ctx, tx, teamID, definitionID)
		if err != nil {
			return err
		}

		target, err := b.store.GetMembershipByID(ctx, tx, membershipID)
		if err != nil || target.TeamID != teamID {
			if err == nil || errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
				return proto.ErrMemberNotFound
			}
			return err //nolint:wrapcheck
		}

		m, err = b.store.CreateFine(ctx, tx, uuid.New(), teamID, target.ID,
			sql.NullInt64{Int64: def.ID, Valid: true}, def.AmountCents, def.Name, issuer.ID)
		return db.WrapError(err)
	}); err != nil {
		return proto.Fine{}, err
	}

	finesIssuedCounter.Inc()
	return fineFromModel(m), nil
}

// MarkFinePaid transitions a fine to paid. A fine that is already paid
// returns the unchanged fine along with proto.ErrFineAlreadyPaid; callers
// treat that as a no-op success, so repeated payment attempts never
// double-count in the ledger.
func (b *Backend) MarkFinePaid(ctx context.Context, actor proto.User, teamID, fineID int64) (proto.Fine, error) {
	var m models.Fine
	var alreadyPaid bool
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		recorder, err := b.membership(ctx, tx, actor, teamID)
		if err != nil {
			return err
		}
		if !recorder.Role.Can(access.MarkFinePaid) {
			return proto.ErrUnauthorized
		}

		fine, err := b.teamFine(ctx, tx, teamID, fineID)
		if err != nil {
			return err
		}

		ok, err := b.store.MarkFinePaid(ctx, tx, fine.ID, recorder.ID, time.Now())
		if err != nil {
			return db.WrapError(err)
		}
		alreadyPaid = !ok

		m, err = b.store.GetFineByID(ctx, tx, fine.ID)
		return db.WrapError(err)
	}); err != nil {
		return proto.Fine{}, err
	}

	if alreadyPaid {
		return fineFromModel(m), proto.ErrFineAlreadyPaid
	}

	finesPaidCounter.Inc()
	return fineFromModel(m), nil
}

// DeleteFine deletes a fine regardless of its status. Requires admin or
// vice-admin. Because the ledger is derived from the fine rows, deleting a
// paid fine retracts its payment from the balance.
func (b *Backend) DeleteFine(ctx context.Context, actor proto.User, teamID, fineID int64) error {
	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.authorize(ctx, tx, actor, teamID, access.DeleteFine); err != nil {
			return err
		}

		fine, err := b.teamFine(ctx, tx, teamID, fineID)
		if err != nil {
			return err
		}

		return db.WrapError(b.store.DeleteFineByID(ctx, tx, fine.ID))
	})
}

// ListFines lists all fines for a team.
func (b *Backend) ListFines(ctx context.Context, actor proto.User, teamID int64) ([]proto.Fine, error) {
	if _, err := b.membership(ctx, b.db, actor, teamID); err != nil {
		return nil, err
	}

	ms, err := b.store.ListFinesByTeam(ctx, b.db, teamID)
	if err != nil {
		return nil, db.WrapError(err)
	}
	return finesFromModels(ms), nil
}

// ListMemberFines lists the fines issued to one membership.
func (b *Backend) ListMemberFines(ctx context.Context, actor proto.User, teamID, membershipID int64) ([]proto.Fine, error) {
	if _, err := b.membership(ctx, b.db, actor, teamID); err != nil {
		return nil, err
	}

	target, err := b.store.GetMembershipByID(ctx, b.db, membershipID)
	if err != nil || target.TeamID != teamID {
		if err == nil || errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return nil, proto.ErrMemberNotFound
		}
		return nil, err //nolint:wrapcheck
	}

	ms, err := b.store.ListFinesByMembership(ctx, b.db, membershipID)
	if err != nil {
		return nil, db.WrapError(err)
	}
	return finesFromModels(ms), nil
}

func (b *Backend) teamDefinition(ctx context.Context, h db.Handler, teamID, definitionID int64) (models.FineDefinition, error) {
	def, err := b.store.GetFineDefinitionByID(ctx, h, definitionID)
	if err != nil || def.TeamID != teamID {
		if err == nil || errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.FineDefinition{}, proto.ErrDefinitionNotFound
		}
		return models.FineDefinition{}, err //nolint:wrapcheck
	}
	return def, nil
}

func (b *Backend) teamFine(ctx context.Context, h db.Handler, teamID, fineID int64) (models.Fine, error) {
	fine, err := b.store.GetFineByID(ctx, h, fineID)
	if err != nil || fine.TeamID != teamID {
		if err == nil || errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.Fine{}, proto.ErrFineNotFound
		}
		return models.Fine{}, err //nolint:wrapcheck
	}
	return fine, nil
}
