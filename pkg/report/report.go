// Package report integrates the optional generative report service. The
// service turns ledger snapshots into natural-language summaries and scans
// receipt photos into structured expenses. It is best effort: all core
// ledger operations work without it.
package report

import (
	"context"

	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/ledger"
)

// SummaryRequest carries the ledger snapshot a summary is generated from.
type SummaryRequest struct {
	TeamName string               `json:"team_name"`
	Totals   ledger.Totals        `json:"totals"`
	Timeline []ledger.Entry       `json:"timeline"`
	Reasons  []ledger.ReasonCount `json:"reasons"`
}

// Receipt is the structured result of scanning a receipt image.
type Receipt struct {
	Amount      currency.Amount `json:"amount"`
	Merchant    string          `json:"merchant"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// Client generates reports and scans receipts.
type Client interface {
	// Summarize produces a natural-language summary of a ledger snapshot.
	Summarize(ctx context.Context, req SummaryRequest) (string, error)
	// ScanReceipt extracts a structured expense from a receipt image.
	ScanReceipt(ctx context.Context, image []byte) (Receipt, error)
	// Enabled reports whether a report service is configured.
	Enabled() bool
}
