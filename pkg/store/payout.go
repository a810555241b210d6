package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
)

// PayoutStore is a store for treasury expenses.
type PayoutStore interface {
	CreatePayout(ctx context.Context, h db.Handler, id uuid.UUID, team int64, amountCents int64, purpose string, issuedBy int64) (models.Payout, error)
	GetPayoutByID(ctx context.Context, h db.Handler, id int64) (models.Payout, error)
	ListPayoutsByTeam(ctx context.Context, h db.Handler, team int64) ([]models.Payout, error)
	DeletePayoutByID(ctx context.Context, h db.Handler, id int64) error
	LatestPayoutAt(ctx context.Context, h db.Handler, team int64) (time.Time, error)
}
