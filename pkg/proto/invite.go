package proto

import (
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
)

// InviteDuration is the fixed validity window of an invite token.
const InviteDuration = 7 * 24 * time.Hour

// Invite is a single-use, time-limited credential granting membership at a
// predetermined role. The opaque token itself is only returned once, at
// creation time.
type Invite struct {
	ID        int64
	TeamID    int64
	Email     string
	Role      access.Role
	CreatedBy int64
	ExpiresAt time.Time
	Consumed  bool
	CreatedAt time.Time
}

// Expired reports whether the invite is past its expiry at the given
// instant. The boundary instant counts as expired.
func (i Invite) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
