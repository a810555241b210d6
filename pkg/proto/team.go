package proto

import (
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
)

// Team is a team with a shared cash box.
type Team struct {
	ID            int64
	Name          string
	Premium       bool
	PaymentHandle string
	CreatedAt     time.Time
}

// Membership links a user to a team with a role.
type Membership struct {
	ID     int64
	TeamID int64
	UserID int64
	Role   access.Role

	DashboardSeenAt time.Time
	FinesSeenAt     time.Time
	ExpensesSeenAt  time.Time

	CreatedAt time.Time
}

// NotificationCategory selects which last-seen watermark an unread check
// compares against.
type NotificationCategory int

const (
	// NotifyDashboard covers the treasury dashboard (payout activity).
	NotifyDashboard NotificationCategory = iota
	// NotifyFines covers fine activity.
	NotifyFines
	// NotifyExpenses covers expense activity.
	NotifyExpenses
)

// Unread flags the notification categories with activity newer than the
// member's last-seen watermarks.
type Unread struct {
	Dashboard bool `json:"dashboard"`
	Fines     bool `json:"fines"`
	Expenses  bool `json:"expenses"`
}
