package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/store"
)

type fineStore struct{}

var _ store.FineStore = (*fineStore)(nil)

// CreateFineDefinition implements store.FineStore.
func (s *fineStore) CreateFineDefinition(ctx context.Context, h db.Handler, team int64, name, description string, amountCents int64) (models.FineDefinition, error) {
	query := h.Rebind(`INSERT INTO fine_definitions (team_id, name, description, amount_cents, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP) RETURNING id`)
	var id int64
	if err := h.GetContext(ctx, &id, query, team, name, description, amountCents); err != nil {
		return models.FineDefinition{}, err //nolint:wrapcheck
	}

	return s.GetFineDefinitionByID(ctx, h, id)
}

// GetFineDefinitionByID implements store.FineStore.
func (*fineStore) GetFineDefinitionByID(ctx context.Context, h db.Handler, id int64) (models.FineDefinition, error) {
	query := h.Rebind(`SELECT * FROM fine_definitions WHERE id = ?`)
	var m models.FineDefinition
	err := h.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// ListFineDefinitionsByTeam implements store.FineStore.
func (*fineStore) ListFineDefinitionsByTeam(ctx context.Context, h db.Handler, team int64) ([]models.FineDefinition, error) {
	query := h.Rebind(`SELECT * FROM fine_definitions WHERE team_id = ? ORDER BY name`)
	var ms []models.FineDefinition
	err := h.SelectContext(ctx, &ms, query, team)
	return ms, err //nolint:wrapcheck
}

// UpdateFineDefinition implements store.FineStore.
func (*fineStore) UpdateFineDefinition(ctx context.Context, h db.Handler, id int64, name, description string, amountCents int64) error {
	query := h.Rebind(`
		UPDATE fine_definitions
		SET
		  name = ?,
		  description = ?,
		  amount_cents = ?,
		  updated_at = CURRENT_TIMESTAMP
		WHERE
		  id = ?
	`)
	_, err := h.ExecContext(ctx, query, name, description, amountCents, id)
	return err //nolint:wrapcheck
}

// DeleteFineDefinitionByID implements store.FineStore.
// Issued fines keep their snapshot; the foreign key nulls their reference.
func (*fineStore) DeleteFineDefinitionByID(ctx context.Context, h db.Handler, id int64) error {
	query := h.Rebind(`DELETE FROM fine_definitions WHERE id = ?`)
	_, err := h.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}

// CreateFine implements store.FineStore.
func (s *fineStore) CreateFine(ctx context.Context, h db.Handler, id uuid.UUID, team, membership int64, definition sql.NullInt64, amountCents int64, reason string, issuedBy int64) (models.Fine, error) {
	query := h.Rebind(`INSERT INTO fines (uuid, team_id, membership_id, definition_id, amount_cents, reason, issued_by, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP) RETURNING id`)
	var rowID int64
	if err := h.GetContext(ctx, &rowID, query, id.String(), team, membership, definition, amountCents, reason, issuedBy); err != nil {
		return models.Fine{}, err //nolint:wrapcheck
	}

	return s.GetFineByID(ctx, h, rowID)
}

// GetFineByID implements store.FineStore.
func (*fineStore) GetFineByID(ctx context.Context, h db.Handler, id int64) (models.Fine, error) {
	query := h.Rebind(`SELECT * FROM fines WHERE id = ?`)
	var m models.Fine
	err := h.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// ListFinesByTeam implements store.FineStore.
func (*fineStore) ListFinesByTeam(ctx context.Context, h db.Handler, team int64) ([]models.Fine, error) {
	query := h.Rebind(`SELECT * FROM fines WHERE team_id = ? ORDER BY id`)
	var ms []models.Fine
	err := h.SelectContext(ctx, &ms, query, team)
	return ms, err //nolint:wrapcheck
}

// ListFinesByMembership implements store.FineStore.
func (*fineStore) ListFinesByMembership(ctx context.Context, h db.Handler, membership int64) ([]models.Fine, error) {
	query := h.Rebind(`SELECT * FROM fines WHERE membership_id = ? ORDER BY id`)
	var ms []models.Fine
	err := h.SelectContext(ctx, &ms, query, membership)
	return ms, err //nolint:wrapcheck
}

// MarkFinePaid implements store.FineStore.
// The update is conditional on the fine still being open so that concurrent
// payments record at most one paid_at.
func (*fineStore) MarkFinePaid(ctx context.Context, h db.Handler, id, paidBy int64, paidAt time.Time) (bool, error) {
	query := h.Rebind(`
		UPDATE fines
		SET
		  paid_at = ?,
		  paid_by = ?,
		  updated_at = CURRENT_TIMESTAMP
		WHERE
		  id = ?
		  AND paid_at IS NULL
	`)
	res, err := h.ExecContext(ctx, query, paidAt.UTC(), paidBy, id)
	if err != nil {
		return false, err //nolint:wrapcheck
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err //nolint:wrapcheck
	}
	return n == 1, nil
}

// DeleteFineByID implements store.FineStore.
func (*fineStore) DeleteFineByID(ctx context.Context, h db.Handler, id int64) error {
	query := h.Rebind(`DELETE FROM fines WHERE id = ?`)
	_, err := h.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}

// LatestFineAt implements store.FineStore.
func (*fineStore) LatestFineAt(ctx context.Context, h db.Handler, team int64) (time.Time, error) {
	query := h.Rebind(`SELECT created_at FROM fines WHERE team_id = ? ORDER BY created_at DESC LIMIT 1`)
	var t time.Time
	err := h.GetContext(ctx, &t, query, team)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	return t, err //nolint:wrapcheck
}
