package proto

import (
	"time"

	"github.com/google/uuid"
	"github.com/teamwallet/teamwallet/pkg/currency"
)

// Payout is a recorded expense withdrawing cash from the team treasury.
type Payout struct {
	ID       int64
	UUID     uuid.UUID
	TeamID   int64
	Amount   currency.Amount
	Purpose  string
	IssuedBy int64
	IssuedAt time.Time
}
