package store

import (
	"context"

	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
)

// TeamStore is a store for teams.
type TeamStore interface {
	CreateTeam(ctx context.Context, h db.Handler, user int64, name string) (models.Team, error)
	GetTeamByID(ctx context.Context, h db.Handler, id int64) (models.Team, error)
	ListTeamsByUserID(ctx context.Context, h db.Handler, user int64) ([]models.Team, error)
	UpdateTeam(ctx context.Context, h db.Handler, id int64, name string, premium bool, paymentHandle string) error
	DeleteTeamByID(ctx context.Context, h db.Handler, id int64) error
}
