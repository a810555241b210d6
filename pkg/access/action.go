package access

// Action is a mutating operation gated by a role check.
type Action int // nolint: revive

const (
	// IssueFine issues a fine to a member.
	IssueFine Action = iota

	// MarkFinePaid marks a fine as paid.
	MarkFinePaid

	// DeleteFine deletes an issued fine.
	DeleteFine

	// ManageCatalog creates, edits, or deletes fine definitions.
	ManageCatalog

	// RecordPayout records a treasury expense.
	RecordPayout

	// DeletePayout deletes a recorded expense.
	DeletePayout

	// CreateInvite issues an invite token.
	CreateInvite

	// ChangeRole promotes or demotes a member.
	ChangeRole

	// RemoveMember removes another member from the team.
	RemoveMember

	// ManageTeam edits team settings or deletes the team.
	ManageTeam
)

// Can reports whether the role is allowed to perform the action.
// Every mutating operation in the backend goes through this single check.
func (r Role) Can(action Action) bool {
	switch action {
	case IssueFine, MarkFinePaid, DeleteFine, ManageCatalog, RecordPayout, DeletePayout, CreateInvite:
		return r >= ViceAdmin
	case ChangeRole, RemoveMember, ManageTeam:
		return r >= Admin
	default:
		return false
	}
}
