package backend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func TestCreateInvite(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)

	invite, token, err := b.CreateInvite(ctx, owner, team.ID, "new@example.com", access.Member)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(token, "tw_") {
		t.Errorf("token = %q, want tw_ prefix", token)
	}
	if invite.Consumed {
		t.Error("fresh invite reported as consumed")
	}
	if got := time.Until(invite.ExpiresAt); got > proto.InviteDuration || got < proto.InviteDuration-time.Minute {
		t.Errorf("invite expires in %s, want about %s", got, proto.InviteDuration)
	}
}

func TestCreateInviteAdminRoleRejected(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)

	if _, _, err := b.CreateInvite(ctx, owner, team.ID, "", access.Admin); !errors.Is(err, proto.ErrUnauthorized) {
		t.Errorf("CreateInvite() for admin role => %v, want ErrUnauthorized", err)
	}
}

func TestCreateInviteRequiresRole(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	join(t, ctx, b, owner, member, team.ID, access.Member)

	if _, _, err := b.CreateInvite(ctx, member, team.ID, "", access.Member); !errors.Is(err, proto.ErrUnauthorized) {
		t.Errorf("CreateInvite() as member => %v, want ErrUnauthorized", err)
	}
}

// An invite token admits exactly one user, no matter how many try.
func TestAcceptInviteSingleUse(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	first := newUser(t, ctx, b)
	second := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)

	_, token, err := b.CreateInvite(ctx, owner, team.ID, "", access.ViceAdmin)
	if err != nil {
		t.Fatal(err)
	}

	m, err := b.AcceptInvite(ctx, first, token)
	if err != nil {
		t.Fatal(err)
	}
	if m.Role != access.ViceAdmin {
		t.Errorf("joined at role %s, want vice-admin", m.Role)
	}

	if _, err := b.AcceptInvite(ctx, second, token); !errors.Is(err, proto.ErrInviteInvalid) {
		t.Errorf("second AcceptInvite() => %v, want ErrInviteInvalid", err)
	}

	members, err := b.TeamMembers(ctx, owner, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 {
		t.Errorf("got %d members, want 2", len(members))
	}
}

// Accepting a token for a team the user already belongs to succeeds with the
// existing membership, but the token is spent like any other acceptance.
func TestAcceptInviteExistingMember(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	member := newUser(t, ctx, b)
	other := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)
	existing := join(t, ctx, b, owner, member, team.ID, access.Member)

	_, token, err := b.CreateInvite(ctx, owner, team.ID, "", access.ViceAdmin)
	if err != nil {
		t.Fatal(err)
	}

	m, err := b.AcceptInvite(ctx, member, token)
	if err != nil {
		t.Fatalf("AcceptInvite() as existing member => %v, want nil", err)
	}
	if m.ID != existing.ID || m.Role != access.Member {
		t.Errorf("got membership %d role %s, want existing %d role member", m.ID, m.Role, existing.ID)
	}

	// The idempotent join still consumed the token.
	if _, _, err := b.ResolveInvite(ctx, token); !errors.Is(err, proto.ErrInviteInvalid) {
		t.Errorf("ResolveInvite() after acceptance => %v, want ErrInviteInvalid", err)
	}
	if _, err := b.AcceptInvite(ctx, other, token); !errors.Is(err, proto.ErrInviteInvalid) {
		t.Errorf("AcceptInvite() with spent token => %v, want ErrInviteInvalid", err)
	}
}

func TestAcceptInviteExpired(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	joiner := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)

	invite, token, err := b.CreateInvite(ctx, owner, team.ID, "", access.Member)
	if err != nil {
		t.Fatal(err)
	}
	expireInvite(t, ctx, b, invite.ID)

	if _, err := b.AcceptInvite(ctx, joiner, token); !errors.Is(err, proto.ErrInviteInvalid) {
		t.Errorf("AcceptInvite() with expired token => %v, want ErrInviteInvalid", err)
	}
	if _, _, err := b.ResolveInvite(ctx, token); !errors.Is(err, proto.ErrInviteInvalid) {
		t.Errorf("ResolveInvite() with expired token => %v, want ErrInviteInvalid", err)
	}
}

func TestAcceptInviteUnknownToken(t *testing.T) {
	ctx, b := testBackend(t)
	joiner := newUser(t, ctx, b)

	if _, err := b.AcceptInvite(ctx, joiner, "tw_0000000000000000000000000000000000000000"); !errors.Is(err, proto.ErrInviteInvalid) {
		t.Errorf("AcceptInvite() with unknown token => %v, want ErrInviteInvalid", err)
	}
}

func TestResolveInvite(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)

	_, token, err := b.CreateInvite(ctx, owner, team.ID, "", access.Member)
	if err != nil {
		t.Fatal(err)
	}

	invite, preview, err := b.ResolveInvite(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if preview.ID != team.ID || preview.Name != team.Name {
		t.Errorf("resolved team %d %q, want %d %q", preview.ID, preview.Name, team.ID, team.Name)
	}
	if invite.Consumed {
		t.Error("resolving must not consume the invite")
	}
}

func TestSweepExpiredInvites(t *testing.T) {
	ctx, b := testBackend(t)
	owner := newUser(t, ctx, b)
	team := newTeam(t, ctx, b, owner)

	stale, _, err := b.CreateInvite(ctx, owner, team.ID, "", access.Member)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := b.CreateInvite(ctx, owner, team.ID, "", access.Member); err != nil {
		t.Fatal(err)
	}
	expireInvite(t, ctx, b, stale.ID)

	n, err := b.SweepExpiredInvites(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("swept %d invites, want 1", n)
	}

	invites, err := b.ListInvites(ctx, owner, team.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(invites) != 1 {
		t.Errorf("got %d invites, want 1", len(invites))
	}
}

// expireInvite rewrites the invite's expiry into the past.
func expireInvite(t *testing.T, ctx context.Context, b *Backend, id int64) {
	t.Helper()
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		_, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE invites SET expires_at = ? WHERE id = ?`),
			time.Now().Add(-time.Hour).UTC(), id)
		return err
	}); err != nil {
		t.Fatal(err)
	}
}
