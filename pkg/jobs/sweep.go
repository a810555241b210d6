package jobs

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/teamwallet/teamwallet/pkg/backend"
	"github.com/teamwallet/teamwallet/pkg/config"
)

func init() {
	Register("invite-sweep", inviteSweep{})
}

// inviteSweep periodically purges expired, unconsumed invite tokens.
// Expired invites are already unredeemable; the sweep only keeps the table
// from growing without bound.
type inviteSweep struct{}

var _ Runner = inviteSweep{}

// Spec implements Runner.
func (inviteSweep) Spec(ctx context.Context) string {
	return config.FromContext(ctx).Jobs.InviteSweep
}

// Func implements Runner.
func (inviteSweep) Func(ctx context.Context) func() {
	return func() {
		logger := log.FromContext(ctx).WithPrefix("jobs.invite-sweep")
		b := backend.FromContext(ctx)
		n, err := b.SweepExpiredInvites(ctx)
		if err != nil {
			logger.Error("failed to sweep expired invites", "err", err)
			return
		}
		if n > 0 {
			logger.Info("purged expired invites", "count", n)
		}
	}
}
