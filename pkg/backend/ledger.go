package backend

import (
	"context"

	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/ledger"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

// LedgerSummary is the derived treasury view returned to every member.
type LedgerSummary struct {
	Totals          ledger.Totals
	Timeline        []ledger.Entry
	TopOffenders    []ledger.MemberTotal
	FrequentReasons []ledger.ReasonCount
}

// Summary aggregates limit: how many offenders and reasons a summary lists.
const summaryTopN = 5

// TeamLedger computes the team's treasury summary from a consistent snapshot
// of its fines and payouts. Every member can read it.
func (b *Backend) TeamLedger(ctx context.Context, actor proto.User, teamID int64) (LedgerSummary, error) {
	fines, payouts, err := b.snapshot(ctx, actor, teamID)
	if err != nil {
		return LedgerSummary{}, err
	}

	return LedgerSummary{
		Totals:          ledger.ComputeBalance(fines, payouts),
		Timeline:        ledger.Timeline(fines, payouts),
		TopOffenders:    ledger.TopOffenders(fines, summaryTopN),
		FrequentReasons: ledger.FrequentReasons(fines, summaryTopN),
	}, nil
}

// MemberDebt returns the open fine total for one membership.
func (b *Backend) MemberDebt(ctx context.Context, actor proto.User, teamID, membershipID int64) (currency.Amount, error) {
	if _, err := b.membership(ctx, b.db, actor, teamID); err != nil {
		return 0, err
	}

	if _, err := b.teamMembership(ctx, b.db, teamID, membershipID); err != nil {
		return 0, err
	}

	ms, err := b.store.ListFinesByTeam(ctx, b.db, teamID)
	if err != nil {
		return 0, db.WrapError(err)
	}

	return ledger.MemberOpenTotal(finesFromModels(ms), membershipID), nil
}

// snapshot reads a team's fines and payouts inside one transaction so the
// derived ledger never mixes states.
func (b *Backend) snapshot(ctx context.Context, actor proto.User, teamID int64) ([]proto.Fine, []proto.Payout, error) {
	var fines []proto.Fine
	var payouts []proto.Payout
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if _, err := b.membership(ctx, tx, actor, teamID); err != nil {
			return err
		}

		fms, err := b.store.ListFinesByTeam(ctx, tx, teamID)
		if err != nil {
			return db.WrapError(err)
		}
		pms, err := b.store.ListPayoutsByTeam(ctx, tx, teamID)
		if err != nil {
			return db.WrapError(err)
		}

		fines = finesFromModels(fms)
		payouts = payoutsFromModels(pms)
		return nil
	}); err != nil {
		return nil, nil, err
	}

	return fines, payouts, nil
}
