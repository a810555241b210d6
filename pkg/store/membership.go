package store

import (
	"context"
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
)

// SeenColumn selects one of the per-category last-seen watermarks.
type SeenColumn string

// Valid seen columns.
const (
	SeenDashboard SeenColumn = "dashboard_seen_at"
	SeenFines     SeenColumn = "fines_seen_at"
	SeenExpenses  SeenColumn = "expenses_seen_at"
)

// MembershipStore is a store for team memberships.
type MembershipStore interface {
	CreateMembership(ctx context.Context, h db.Handler, team, user int64, role access.Role) (models.Membership, error)
	GetMembershipByID(ctx context.Context, h db.Handler, id int64) (models.Membership, error)
	FindMembership(ctx context.Context, h db.Handler, team, user int64) (models.Membership, error)
	ListMembershipsByTeam(ctx context.Context, h db.Handler, team int64) ([]models.Membership, error)
	UpdateMembershipRole(ctx context.Context, h db.Handler, id int64, role access.Role) error
	UpdateMembershipSeen(ctx context.Context, h db.Handler, id int64, col SeenColumn, seenAt time.Time) error
	CountTeamAdmins(ctx context.Context, h db.Handler, team int64) (int64, error)
	DeleteMembershipByID(ctx context.Context, h db.Handler, id int64) error
}
