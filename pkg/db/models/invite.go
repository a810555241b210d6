package models

import (
	"database/sql"
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
)

// Invite is a single-use, time-limited token granting team membership at a
// predetermined role. Only the token hash is stored.
type Invite struct {
	ID         int64          `db:"id"`
	TeamID     int64          `db:"team_id"`
	TokenHash  string         `db:"token_hash"`
	Email      sql.NullString `db:"email"`
	Role       access.Role    `db:"role"`
	CreatedBy  int64          `db:"created_by"`
	ExpiresAt  time.Time      `db:"expires_at"`
	ConsumedAt sql.NullTime   `db:"consumed_at"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

// IsConsumed reports whether the invite has already been used.
func (i Invite) IsConsumed() bool {
	return i.ConsumedAt.Valid
}
