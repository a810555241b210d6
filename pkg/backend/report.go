package backend

import (
	"context"
	"fmt"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/ledger"
	"github.com/teamwallet/teamwallet/pkg/proto"
	"github.com/teamwallet/teamwallet/pkg/report"
)

// FinancialSummary generates a natural-language summary of the team's
// ledger through the report service. The summary is advisory: a failure
// never affects the underlying records.
func (b *Backend) FinancialSummary(ctx context.Context, actor proto.User, teamID int64) (string, error) {
	if !b.reporter.Enabled() {
		return "", proto.ErrReportUnavailable
	}

	fines, payouts, err := b.snapshot(ctx, actor, teamID)
	if err != nil {
		return "", err
	}

	team, err := b.store.GetTeamByID(ctx, b.db, teamID)
	if err != nil {
		return "", db.WrapError(err)
	}

	summary, err := b.reporter.Summarize(ctx, report.SummaryRequest{
		TeamName: team.Name,
		Totals:   ledger.ComputeBalance(fines, payouts),
		Timeline: ledger.Timeline(fines, payouts),
		Reasons:  ledger.FrequentReasons(fines, 0),
	})
	if err != nil {
		b.logger.Error("report service summarize failed", "team", teamID, "err", err)
		return "", fmt.Errorf("%w: %s", proto.ErrReportUnavailable, err)
	}

	return summary, nil
}

// ScanReceipt extracts a structured expense draft from a receipt image. The
// result is a suggestion only; nothing is recorded until the caller submits
// a payout.
func (b *Backend) ScanReceipt(ctx context.Context, actor proto.User, teamID int64, image []byte) (report.Receipt, error) {
	if !b.reporter.Enabled() {
		return report.Receipt{}, proto.ErrReportUnavailable
	}

	if err := b.authorize(ctx, b.db, actor, teamID, access.RecordPayout); err != nil {
		return report.Receipt{}, err
	}

	receipt, err := b.reporter.ScanReceipt(ctx, image)
	if err != nil {
		b.logger.Error("report service scan failed", "team", teamID, "err", err)
		return report.Receipt{}, fmt.Errorf("%w: %s", proto.ErrReportUnavailable, err)
	}

	return receipt, nil
}
