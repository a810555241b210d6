package proto

import (
	"errors"
)

var (
	// ErrUnauthorized is returned when the actor lacks the role required to
	// perform an action.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound is returned when a team is not found.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMemberNotFound is returned when a membership is not found or belongs
	// to another team.
	ErrMemberNotFound = errors.New("member not found")
	// ErrFineNotFound is returned when a fine is not found.
	ErrFineNotFound = errors.New("fine not found")
	// ErrDefinitionNotFound is returned when a fine definition is not found.
	ErrDefinitionNotFound = errors.New("fine definition not found")
	// ErrPayoutNotFound is returned when a payout is not found.
	ErrPayoutNotFound = errors.New("payout not found")
	// ErrFineAlreadyPaid is returned when marking a fine paid that is already
	// paid. Callers treat this as a no-op success.
	ErrFineAlreadyPaid = errors.New("fine already paid")
	// ErrInviteInvalid is returned when an invite token is unknown, already
	// consumed, or expired.
	ErrInviteInvalid = errors.New("invite token invalid")
	// ErrLastAdmin is returned when an operation would leave a team with no
	// admin.
	ErrLastAdmin = errors.New("team must retain at least one admin")
	// ErrUserExist is returned when a username or email is already taken.
	ErrUserExist = errors.New("user already exists")
	// ErrReportUnavailable is returned when the generative report service
	// fails. It never blocks ledger operations.
	ErrReportUnavailable = errors.New("report service unavailable")
)
