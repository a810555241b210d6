package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func TestChangeRole(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	m := join(t, ctx, b, owner, member, team.ID, access.Member)

	got, err := b.ChangeRole(ctx, owner, team.ID, m.ID, access.ViceAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if got.Role != access.ViceAdmin {
		t.Errorf("role = %s, want vice-admin", got.Role)
	}
}

func TestChangeRoleRequiresAdmin(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	vice := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	join(t, ctx, b, owner, vice, team.ID, access.ViceAdmin)
	m := join(t, ctx, b, owner, member, team.ID, access.Member)

	if _, err := b.ChangeRole(ctx, vice, team.ID, m.ID, access.ViceAdmin); !errors.Is(err, proto.ErrUnauthorized) {
		t.Errorf("ChangeRole() as vice-admin => %v, want ErrUnauthorized", err)
	}
}

// A team must always keep at least one admin.
func TestLastAdminProtected(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	join(t, ctx, b, owner, member, team.ID, access.Member)

	members, err := b.TeamMembers(ctx, owner, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	var ownerM proto.Membership
	for _, m := range members {
		if m.UserID == owner.ID() {
			ownerM = m
		}
	}

	if _, err := b.ChangeRole(ctx, owner, team.ID, ownerM.ID, access.Member); !errors.Is(err, proto.ErrLastAdmin) {
		t.Errorf("demoting the only admin => %v, want ErrLastAdmin", err)
	}
	if err := b.RemoveMember(ctx, owner, team.ID, ownerM.ID); !errors.Is(err, proto.ErrLastAdmin) {
		t.Errorf("removing the only admin => %v, want ErrLastAdmin", err)
	}

	// With a second admin both operations go through.
	other := newUser(t, ctx, b)
	m := join(t, ctx, b, owner, other, team.ID, access.ViceAdmin)
	if _, err := b.ChangeRole(ctx, owner, team.ID, m.ID, access.Admin); err != nil {
		t.Fatal(err)
	}
	if _, err := b.ChangeRole(ctx, owner, team.ID, ownerM.ID, access.Member); err != nil {
		t.Errorf("demoting one of two admins => %v, want nil", err)
	}
}

func TestRemoveMemberSelf(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	m := join(t, ctx, b, owner, member, team.ID, access.Member)

	// Members can leave on their own but can not remove others.
	members, err := b.TeamMembers(ctx, owner, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	var ownerM proto.Membership
	for _, mm := range members {
		if mm.UserID == owner.ID() {
			ownerM = mm
		}
	}
	if err := b.RemoveMember(ctx, member, team.ID, ownerM.ID); !errors.Is(err, proto.ErrUnauthorized) {
		t.Errorf("member removing admin => %v, want ErrUnauthorized", err)
	}
	if err := b.RemoveMember(ctx, member, team.ID, m.ID); err != nil {
		t.Errorf("member leaving => %v, want nil", err)
	}

	if _, err := b.Team(ctx, member, team.ID); !errors.Is(err, proto.ErrUnauthorized) {
		t.Errorf("Team() after leaving => %v, want ErrUnauthorized", err)
	}
}

// A departing member's fines stay on the books so the treasury balance does
// not shift when someone leaves.
func TestRemoveMemberKeepsFines(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	m := join(t, ctx, b, owner, member, team.ID, access.Member)

	def, err := b.CreateFineDefinition(ctx, owner, team.ID, "Late", "", currency.MustParse("5.00"))
	if err != nil {
		t.Fatal(err)
	}
	fine, err := b.IssueFine(ctx, owner, team.ID, m.ID, def.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.MarkFinePaid(ctx, owner, team.ID, fine.ID); err != nil {
		t.Fatal(err)
	}

	if err := b.RemoveMember(ctx, owner, team.ID, m.ID); err != nil {
		t.Fatal(err)
	}

	summary, err := b.TeamLedger(ctx, owner, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Totals.Balance != currency.MustParse("5.00") {
		t.Errorf("balance after member left = %s, want 5.00", summary.Totals.Balance)
	}

	fines, err := b.ListFines(ctx, owner, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(fines) != 1 {
		t.Fatalf("got %d fines after member left, want 1", len(fines))
	}
	if fines[0].MembershipID != 0 {
		t.Errorf("departed member's fine still references membership %d", fines[0].MembershipID)
	}
}

func TestUnread(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	m := join(t, ctx, b, owner, member, team.ID, access.Member)

	unread, err := b.Unread(ctx, member, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if unread.Fines || unread.Expenses || unread.Dashboard {
		t.Errorf("fresh team reports unread = %+v, want none", unread)
	}

	// Row timestamps have second resolution; move the watermarks clearly
	// behind the activity we are about to create.
	backdateSeen(t, ctx, b, m.ID)

	def, err := b.CreateFineDefinition(ctx, owner, team.ID, "Late", "", currency.MustParse("1.00"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.IssueFine(ctx, owner, team.ID, m.ID, def.ID); err != nil {
		t.Fatal(err)
	}

	unread, err = b.Unread(ctx, member, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !unread.Fines {
		t.Errorf("after fine, unread = %+v, want fines set", unread)
	}
	if unread.Dashboard || unread.Expenses {
		t.Errorf("fine activity set %+v, only the fines badge belongs to it", unread)
	}

	if _, err := b.RecordPayout(ctx, owner, team.ID, currency.MustParse("1.00"), "pizza"); err != nil {
		t.Fatal(err)
	}
	unread, err = b.Unread(ctx, member, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !unread.Dashboard || !unread.Expenses {
		t.Errorf("after payout, unread = %+v, want dashboard and expenses set", unread)
	}

	if err := b.MarkSeen(ctx, member, team.ID, proto.NotifyFines); err != nil {
		t.Fatal(err)
	}
	unread, err = b.Unread(ctx, member, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if unread.Fines {
		t.Error("fines badge still set after MarkSeen")
	}
}

// backdateSeen rewrites a membership's last-seen watermarks into the past.
func backdateSeen(t *testing.T, ctx context.Context, b *Backend, id int64) {
	t.Helper()
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		_, err := tx.ExecContext(ctx, tx.Rebind(`
			UPDATE memberships
			SET dashboard_seen_at = ?, fines_seen_at = ?, expenses_seen_at = ?
			WHERE id = ?`),
			time.Now().Add(-time.Hour).UTC(), time.Now().Add(-time.Hour).UTC(),
			time.Now().Add(-time.Hour).UTC(), id)
		return err
	}); err != nil {
		t.Fatal(err)
	}
}
