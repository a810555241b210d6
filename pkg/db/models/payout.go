package models

import (
	"time"

	"github.com/google/uuid"
)

// Payout is a recorded expense withdrawing cash from the team treasury.
type Payout struct {
	ID          int64     `db:"id"`
	UUID        uuid.UUID `db:"uuid"`
	TeamID      int64     `db:"team_id"`
	AmountCents int64     `db:"amount_cents"`
	Purpose     string    `db:"purpose"`
	IssuedBy    int64     `db:"issued_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
