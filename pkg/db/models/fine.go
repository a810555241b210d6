package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// FineDefinition is a reusable catalog entry for a fine.
type FineDefinition struct {
	ID          int64          `db:"id"`
	TeamID      int64          `db:"team_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	AmountCents int64          `db:"amount_cents"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// Fine is an issued penalty. Amount and reason are snapshots taken from the
// catalog definition at issuance, so later catalog edits or deletions never
// change issued fines. MembershipID goes null when the fined member leaves;
// the fine itself stays on the team's books.
type Fine struct {
	ID           int64          `db:"id"`
	UUID         uuid.UUID      `db:"uuid"`
	TeamID       int64          `db:"team_id"`
	MembershipID sql.NullInt64  `db:"membership_id"`
	DefinitionID sql.NullInt64  `db:"definition_id"`
	AmountCents  int64          `db:"amount_cents"`
	Reason       string         `db:"reason"`
	IssuedBy     int64          `db:"issued_by"`
	PaidAt       sql.NullTime   `db:"paid_at"`
	PaidBy       sql.NullInt64  `db:"paid_by"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// IsPaid reports whether the fine has been paid.
func (f Fine) IsPaid() bool {
	return f.PaidAt.Valid
}
