package models

import (
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
)

// Membership links a user to a team with a role.
// There is exactly one membership per (team, user) pair.
type Membership struct {
	ID     int64       `db:"id"`
	TeamID int64       `db:"team_id"`
	UserID int64       `db:"user_id"`
	Role   access.Role `db:"role"`

	// Last-seen watermarks for unread notification badges.
	DashboardSeenAt time.Time `db:"dashboard_seen_at"`
	FinesSeenAt     time.Time `db:"fines_seen_at"`
	ExpensesSeenAt  time.Time `db:"expenses_seen_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
