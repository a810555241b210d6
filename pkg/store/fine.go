package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
)

// FineStore is a store for the fine catalog and issued fines.
type FineStore interface {
	CreateFineDefinition(ctx context.Context, h db.Handler, team int64, name, description string, amountCents int64) (models.FineDefinition, error)
	GetFineDefinitionByID(ctx context.Context, h db.Handler, id int64) (models.FineDefinition, error)
	ListFineDefinitionsByTeam(ctx context.Context, h db.Handler, team int64) ([]models.FineDefinition, error)
	UpdateFineDefinition(ctx context.Context, h db.Handler, id int64, name, description string, amountCents int64) error
	DeleteFineDefinitionByID(ctx context.Context, h db.Handler, id int64) error

	CreateFine(ctx context.Context, h db.Handler, id uuid.UUID, team, membership int64, definition sql.NullInt64, amountCents int64, reason string, issuedBy int64) (models.Fine, error)
	GetFineByID(ctx context.Context, h db.Handler, id int64) (models.Fine, error)
	ListFinesByTeam(ctx context.Context, h db.Handler, team int64) ([]models.Fine, error)
	ListFinesByMembership(ctx context.Context, h db.Handler, membership int64) ([]models.Fine, error)
	// MarkFinePaid conditionally transitions the fine to paid. It reports
	// false without error when the fine was already paid.
	MarkFinePaid(ctx context.Context, h db.Handler, id, paidBy int64, paidAt time.Time) (bool, error)
	DeleteFineByID(ctx context.Context, h db.Handler, id int64) error
	LatestFineAt(ctx context.Context, h db.Handler, team int64) (time.Time, error)
}
