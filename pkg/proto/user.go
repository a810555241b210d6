// Package proto defines domain types shared across the TeamWallet backend.
package proto

// User is an authenticated user as seen by the core. Credentials never reach
// this layer; the identity boundary resolves them to an opaque ID.
type User interface {
	// ID returns the user's ID.
	ID() int64
	// Username returns the user's login name.
	Username() string
	// Email returns the user's email address.
	Email() string
}
