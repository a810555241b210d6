package web

import (
	"io"
	"net/http"

	"github.com/teamwallet/teamwallet/pkg/backend"
	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/ledger"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func getPayouts(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	payouts, err := be.ListPayouts(ctx, u, teamID)
	if err != nil {
		renderError(w, err)
		return
	}

	res := make([]payoutResponse, 0, len(payouts))
	for _, p := range payouts {
		res = append(res, payoutToResponse(p))
	}
	renderJSON(w, http.StatusOK, res)
}

func postPayout(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	var req struct {
		Amount  currency.Amount `json:"amount"`
		Purpose string          `json:"purpose"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}

	payout, err := be.RecordPayout(ctx, u, teamID, req.Amount, req.Purpose)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, payoutToResponse(payout))
}

func deletePayout(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	payoutID, ok2 := pathID(r, "payout")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	if err := be.DeletePayout(ctx, u, teamID, payoutID); err != nil {
		renderError(w, err)
		return
	}

	renderStatus(http.StatusNoContent)(w, r)
}

func getLedger(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	sum, err := be.TeamLedger(ctx, u, teamID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, ledgerToResponse(sum))
}

func ledgerToResponse(sum backend.LedgerSummary) ledgerResponse {
	timeline := make([]timelineEntry, 0, len(sum.Timeline))
	for _, e := range sum.Timeline {
		timeline = append(timeline, timelineEntry{
			Kind:        e.Kind,
			Amount:      e.Amount,
			Description: e.Description,
			OccurredAt:  e.OccurredAt,
		})
	}

	res := ledgerResponse{
		Balance:         sum.Totals.Balance,
		OpenTotal:       sum.Totals.OpenTotal,
		PaidTotal:       sum.Totals.PaidTotal,
		Timeline:        timeline,
		TopOffenders:    sum.TopOffenders,
		FrequentReasons: sum.FrequentReasons,
	}
	if res.TopOffenders == nil {
		res.TopOffenders = []ledger.MemberTotal{}
	}
	if res.FrequentReasons == nil {
		res.FrequentReasons = []ledger.ReasonCount{}
	}
	return res
}

func getReport(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	summary, err := be.FinancialSummary(ctx, u, teamID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, struct {
		Summary string `json:"summary"`
	}{Summary: summary})
}

func postScan(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	image, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
	if err != nil {
		renderError(w, err)
		return
	}
	defer r.Body.Close() // nolint: errcheck

	receipt, err := be.ScanReceipt(ctx, u, teamID, image)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, receipt)
}
