package backend

import (
	"errors"
	"testing"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func TestIssueFineSnapshotsDefinition(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	m := join(t, ctx, b, owner, member, team.ID, access.Member)

	def, err := b.CreateFineDefinition(ctx, owner, team.ID, "Phone in meeting", "", currency.MustParse("3.00"))
	if err != nil {
		t.Fatal(err)
	}
	fine, err := b.IssueFine(ctx, owner, team.ID, m.ID, def.ID)
	if err != nil {
		t.Fatal(err)
	}

	// Editing the catalog entry must not touch the issued fine.
	if _, err := b.UpdateFineDefinition(ctx, owner, team.ID, def.ID, "Phone in meeting", "", currency.MustParse("9.99")); err != nil {
		t.Fatal(err)
	}
	// Neither must deleting it.
	if err := b.DeleteFineDefinition(ctx, owner, team.ID, def.ID); err != nil {
		t.Fatal(err)
	}

	fines, err := b.ListMemberFines(ctx, owner, team.ID, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(fines) != 1 {
		t.Fatalf("got %d fines, want 1", len(fines))
	}
	if fines[0].Amount != fine.Amount || fines[0].Amount != currency.MustParse("3.00") {
		t.Errorf("fine amount = %s, want 3.00", fines[0].Amount)
	}
	if fines[0].Reason != "Phone in meeting" {
		t.Errorf("fine reason = %q, want snapshot of definition name", fines[0].Reason)
	}
}

func TestIssueFineUnknownTargets(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)

	def, err := b.CreateFineDefinition(ctx, owner, team.ID, "Late", "", currency.MustParse("1.00"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.IssueFine(ctx, owner, team.ID, 9999, def.ID); !errors.Is(err, proto.ErrMemberNotFound) {
		t.Errorf("IssueFine() to unknown member => %v, want ErrMemberNotFound", err)
	}

	members, err := b.TeamMembers(ctx, owner, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.IssueFine(ctx, owner, team.ID, members[0].ID, 9999); !errors.Is(err, proto.ErrDefinitionNotFound) {
		t.Errorf("IssueFine() from unknown definition => %v, want ErrDefinitionNotFound", err)
	}
}

func TestIssueFineRequiresRole(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	m := join(t, ctx, b, owner, member, team.ID, access.Member)

	def, err := b.CreateFineDefinition(ctx, owner, team.ID, "Late", "", currency.MustParse("1.00"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.IssueFine(ctx, member, team.ID, m.ID, def.ID); !errors.Is(err, proto.ErrUnauthorized) {
		t.Errorf("IssueFine() as member => %v, want ErrUnauthorized", err)
	}
}

// Marking a fine paid twice must not double-count: the second attempt
// reports ErrFineAlreadyPaid and leaves the record untouched.
func TestMarkFinePaidIdempotent(t *testing.T) {
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

	paid, err := b.MarkFinePaid(ctx, owner, team.ID, fine.ID)
	if err != nil {
		t.Fatal(err)
	}
	if paid.Status() != proto.FinePaid {
		t.Fatalf("fine status = %s, want paid", paid.Status())
	}

	again, err := b.MarkFinePaid(ctx, owner, team.ID, fine.ID)
	if !errors.Is(err, proto.ErrFineAlreadyPaid) {
		t.Fatalf("second MarkFinePaid() => %v, want ErrFineAlreadyPaid", err)
	}
	if !again.PaidAt.Equal(paid.PaidAt) {
		t.Errorf("second MarkFinePaid() moved PaidAt from %v to %v", paid.PaidAt, again.PaidAt)
	}

	sum, err := b.TeamLedger(ctx, owner, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if want := currency.MustParse("5.00"); sum.Totals.Balance != want {
		t.Errorf("balance = %s, want %s after repeated payment attempts", sum.Totals.Balance, want)
	}
}

// Deleting a paid fine retracts its payment from the derived balance.
func TestDeleteFineRetractsLedger(t *testing.T) {
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

	if err := b.DeleteFine(ctx, owner, team.ID, fine.ID); err != nil {
		t.Fatal(err)
	}

	sum, err := b.TeamLedger(ctx, owner, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Totals.Balance.IsZero() {
		t.Errorf("balance = %s, want 0.00 after deleting the paid fine", sum.Totals.Balance)
	}
	if len(sum.Timeline) != 0 {
		t.Errorf("timeline has %d entries, want 0", len(sum.Timeline))
	}
}

func TestCreateFineDefinitionNegativeAmount(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)

	if _, err := b.CreateFineDefinition(ctx, owner, team.ID, "Bad", "", currency.FromCents(-100)); !errors.Is(err, currency.ErrInvalidAmount) {
		t.Errorf("CreateFineDefinition() with negative amount => %v, want ErrInvalidAmount", err)
	}
}
