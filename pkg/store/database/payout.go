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

type payoutStore struct{}

var _ store.PayoutStore = (*payoutStore)(nil)

// CreatePayout implements store.PayoutStore.
func (s *payoutStore) CreatePayout(ctx context.Context, h db.Handler, id uuid.UUID, team int64, amountCents int64, purpose string, issuedBy int64) (models.Payout, error) {
	query := h.Rebind(`INSERT INTO payouts (uuid, team_id, amount_cents, purpose, issued_by, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP) RETURNING id`)
	var rowID int64
	if err := h.GetContext(ctx, &rowID, query, id.String(), team, amountCents, purpose, issuedBy); err != nil {
		return models.Payout{}, err //nolint:wrapcheck
	}

	return s.GetPayoutByID(ctx, h, rowID)
}

// GetPayoutByID implements store.PayoutStore.
func (*payoutStore) GetPayoutByID(ctx context.Context, h db.Handler, id int64) (models.Payout, error) {
	query := h.Rebind(`SELECT * FROM payouts WHERE id = ?`)
	var m models.Payout
	err := h.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// ListPayoutsByTeam implements store.PayoutStore.
func (*payoutStore) ListPayoutsByTeam(ctx context.Context, h db.Handler, team int64) ([]models.Payout, error) {
	query := h.Rebind(`SELECT * FROM payouts WHERE team_id = ? ORDER BY id`)
	var ms []models.Payout
	err := h.SelectContext(ctx, &ms, query, team)
	return ms, err //nolint:wrapcheck
}

// DeletePayoutByID implements store.PayoutStore.
func (*payoutStore) DeletePayoutByID(ctx context.Context, h db.Handler, id int64) error {
	query := h.Rebind(`DELETE FROM payouts WHERE id = ?`)
	_, err := h.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}

// LatestPayoutAt implements store.PayoutStore.
func (*payoutStore) LatestPayoutAt(ctx context.Context, h db.Handler, team int64) (time.Time, error) {
	query := h.Rebind(`SELECT created_at FROM payouts WHERE team_id = ? ORDER BY created_at DESC LIMIT 1`)
	var t time.Time
	err := h.GetContext(ctx, &t, query, team)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	return t, err //nolint:wrapcheck
}
