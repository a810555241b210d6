package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/ledger"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

// APIController registers the REST routes for teams, fines, payouts,
// invites, and the derived ledger.
func APIController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/v1/teams", withUser(getTeams)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams", withUser(postTeam)).Methods(http.MethodPost)
	r.HandleFunc("/v1/teams/{team}", withUser(getTeam)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}", withUser(patchTeam)).Methods(http.MethodPatch)
	r.HandleFunc("/v1/teams/{team}", withUser(deleteTeam)).Methods(http.MethodDelete)

	r.HandleFunc("/v1/teams/{team}/members", withUser(getMembers)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}/members/{member}", withUser(patchMember)).Methods(http.MethodPatch)
	r.HandleFunc("/v1/teams/{team}/members/{member}", withUser(deleteMember)).Methods(http.MethodDelete)
	r.HandleFunc("/v1/teams/{team}/members/{member}/fines", withUser(getMemberFines)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}/members/{member}/debt", withUser(getMemberDebt)).Methods(http.MethodGet)

	r.HandleFunc("/v1/teams/{team}/catalog", withUser(getCatalog)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}/catalog", withUser(postDefinition)).Methods(http.MethodPost)
	r.HandleFunc("/v1/teams/{team}/catalog/{definition}", withUser(patchDefinition)).Methods(http.MethodPatch)
	r.HandleFunc("/v1/teams/{team}/catalog/{definition}", withUser(deleteDefinition)).Methods(http.MethodDelete)

	r.HandleFunc("/v1/teams/{team}/fines", withUser(getFines)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}/fines", withUser(postFine)).Methods(http.MethodPost)
	r.HandleFunc("/v1/teams/{team}/fines/{fine}/pay", withUser(postFinePayment)).Methods(http.MethodPost)
	r.HandleFunc("/v1/teams/{team}/fines/{fine}", withUser(deleteFine)).Methods(http.MethodDelete)

	r.HandleFunc("/v1/teams/{team}/payouts", withUser(getPayouts)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}/payouts", withUser(postPayout)).Methods(http.MethodPost)
	r.HandleFunc("/v1/teams/{team}/payouts/{payout}", withUser(deletePayout)).Methods(http.MethodDelete)

	r.HandleFunc("/v1/teams/{team}/invites", withUser(getInvites)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}/invites", withUser(postInvite)).Methods(http.MethodPost)
	r.HandleFunc("/v1/teams/{team}/invites/{invite}", withUser(deleteInvite)).Methods(http.MethodDelete)
	r.HandleFunc("/v1/invites/{token}", getInvitePreview).Methods(http.MethodGet)
	r.HandleFunc("/v1/invites/{token}/accept", withUser(postInviteAccept)).Methods(http.MethodPost)

	r.HandleFunc("/v1/teams/{team}/ledger", withUser(getLedger)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}/unread", withUser(getUnread)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}/seen", withUser(postSeen)).Methods(http.MethodPost)

	r.HandleFunc("/v1/teams/{team}/report", withUser(getReport)).Methods(http.MethodGet)
	r.HandleFunc("/v1/teams/{team}/scan", withUser(postScan)).Methods(http.MethodPost)
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id, err == nil && id > 0
}

type teamResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Premium       bool   `json:"premium"`
	PaymentHandle string `json:"payment_handle,omitempty"`
}

func teamToResponse(t proto.Team) teamResponse {
	return teamResponse{
		ID:            t.ID,
		Name:          t.Name,
		Premium:       t.Premium,
		PaymentHandle: t.PaymentHandle,
	}
}

type memberResponse struct {
	ID     int64       `json:"id"`
	UserID int64       `json:"user_id"`
	Role   access.Role `json:"role"`
}

func memberToResponse(m proto.Membership) memberResponse {
	return memberResponse{ID: m.ID, UserID: m.UserID, Role: m.Role}
}

type definitionResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Amount      currency.Amount `json:"amount"`
}

func definitionToResponse(d proto.FineDefinition) definitionResponse {
	return definitionResponse{ID: d.ID, Name: d.Name, Description: d.Description, Amount: d.Amount}
}

type fineResponse struct {
	ID           int64            `json:"id"`
	UUID         string           `json:"uuid"`
	MembershipID int64            `json:"membership_id"`
	Amount       currency.Amount  `json:"amount"`
	Reason       string           `json:"reason"`
	Status       proto.FineStatus `json:"status"`
	IssuedAt     int64            `json:"issued_at"`
	PaidAt       int64            `json:"paid_at,omitempty"`
}

func fineToResponse(f proto.Fine) fineResponse {
	res := fineResponse{
		ID:           f.ID,
		UUID:         f.UUID.String(),
		MembershipID: f.MembershipID,
		Amount:       f.Amount,
		Reason:       f.Reason,
		Status:       f.Status(),
		IssuedAt:     f.IssuedAt.Unix(),
	}
	if !f.PaidAt.IsZero() {
		res.PaidAt = f.PaidAt.Unix()
	}
	return res
}

func finesToResponse(fines []proto.Fine) []fineResponse {
	res := make([]fineResponse, 0, len(fines))
	for _, f := range fines {
		res = append(res, fineToResponse(f))
	}
	return res
}

type payoutResponse struct {
	ID       int64           `json:"id"`
	UUID     string          `json:"uuid"`
	Amount   currency.Amount `json:"amount"`
	Purpose  string          `json:"purpose"`
	IssuedAt int64           `json:"issued_at"`
}

func payoutToResponse(p proto.Payout) payoutResponse {
	return payoutResponse{
		ID:       p.ID,
		UUID:     p.UUID.String(),
		Amount:   p.Amount,
		Purpose:  p.Purpose,
		IssuedAt: p.IssuedAt.Unix(),
	}
}

type inviteResponse struct {
	ID        int64       `json:"id"`
	Email     string      `json:"email,omitempty"`
	Role      access.Role `json:"role"`
	ExpiresAt int64       `json:"expires_at"`
	Consumed  bool        `json:"consumed"`
	Token     string      `json:"token,omitempty"`
}

func inviteToResponse(i proto.Invite) inviteResponse {
	return inviteResponse{
		ID:        i.ID,
		Email:     i.Email,
		Role:      i.Role,
		ExpiresAt: i.ExpiresAt.Unix(),
		Consumed:  i.Consumed,
	}
}

type ledgerResponse struct {
	Balance         currency.Amount      `json:"balance"`
	OpenTotal       currency.Amount      `json:"open_total"`
	PaidTotal       currency.Amount      `json:"paid_total"`
	Timeline        []timelineEntry      `json:"timeline"`
	TopOffenders    []ledger.MemberTotal `json:"top_offenders"`
	FrequentReasons []ledger.ReasonCount `json:"frequent_reasons"`
}

type timelineEntry struct {
	Kind        ledger.EntryKind `json:"kind"`
	Amount      currency.Amount  `json:"amount"`
	Description string           `json:"description"`
	OccurredAt  int64            `json:"occurred_at"`
}
