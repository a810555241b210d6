package models

import (
	"database/sql"
	"time"
)

// Team represents a team with a shared cash box.
type Team struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	Premium       bool           `db:"premium"`
	PaymentHandle sql.NullString `db:"payment_handle"`
	CreatedBy     int64          `db:"created_by"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}
