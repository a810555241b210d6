package proto

import (
	"time"

	"github.com/google/uuid"
	"github.com/teamwallet/teamwallet/pkg/currency"
)

// FineStatus is the lifecycle state of a fine.
type FineStatus string

const (
	// FineOpen is the initial state of an issued fine.
	FineOpen FineStatus = "open"
	// FinePaid is the terminal state of a fine.
	FinePaid FineStatus = "paid"
)

// FineDefinition is a reusable catalog entry for a fine.
type FineDefinition struct {
	ID          int64
	TeamID      int64
	Name        string
	Description string
	Amount      currency.Amount
	CreatedAt   time.Time
}

// Fine is an issued penalty. Amount and Reason are snapshots from the
// catalog definition at issuance. MembershipID is zero once the fined
// member has left the team; the fine stays on the books either way.
type Fine struct {
	ID           int64
	UUID         uuid.UUID
	TeamID       int64
	MembershipID int64
	DefinitionID int64
	Amount       currency.Amount
	Reason       string
	IssuedBy     int64
	IssuedAt     time.Time
	PaidAt       time.Time
	PaidBy       int64
}

// Status returns the lifecycle state of the fine.
func (f Fine) Status() FineStatus {
	if !f.PaidAt.IsZero() {
		return FinePaid
	}
	return FineOpen
}
