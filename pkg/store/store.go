// Package store provides data store functionality.
package store

// Store is an interface for managing teams, memberships, fines, payouts, and
// invites.
type Store interface {
	UserStore
	TeamStore
	MembershipStore
	FineStore
	PayoutStore
	InviteStore
}
