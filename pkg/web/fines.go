package web

import (
	"errors"
	"net/http"

	"github.com/teamwallet/teamwallet/pkg/backend"
	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func getCatalog(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	defs, err := be.ListFineDefinitions(ctx, u, teamID)
	if err != nil {
		renderError(w, err)
		return
	}

	res := make([]definitionResponse, 0, len(defs))
	for _, d := range defs {
		res = append(res, definitionToResponse(d))
	}
	renderJSON(w, http.StatusOK, res)
}

type definitionRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      currency.Amount `json:"amount"`
}

func postDefinition(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	var req definitionRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}

	def, err := be.CreateFineDefinition(ctx, u, teamID, req.Name, req.Description, req.Amount)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, definitionToResponse(def))
}

func patchDefinition(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	defID, ok2 := pathID(r, "definition")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	var req definitionRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}

	def, err := be.UpdateFineDefinition(ctx, u, teamID, defID, req.Name, req.Description, req.Amount)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, definitionToResponse(def))
}

func deleteDefinition(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	defID, ok2 := pathID(r, "definition")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	if err := be.DeleteFineDefinition(ctx, u, teamID, defID); err != nil {
		renderError(w, err)
		return
	}

	renderStatus(http.StatusNoContent)(w, r)
}

func getFines(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	fines, err := be.ListFines(ctx, u, teamID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, finesToResponse(fines))
}

func getMemberFines(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	memberID, ok2 := pathID(r, "member")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	fines, err := be.ListMemberFines(ctx, u, teamID, memberID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, finesToResponse(fines))
}

func getMemberDebt(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	memberID, ok2 := pathID(r, "member")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	debt, err := be.MemberDebt(ctx, u, teamID, memberID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, struct {
		Debt currency.Amount `json:"debt"`
	}{Debt: debt})
}

func postFine(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	var req struct {
		MembershipID int64 `json:"membership_id"`
		DefinitionID int64 `json:"definition_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}

	fine, err := be.IssueFine(ctx, u, teamID, req.MembershipID, req.DefinitionID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, fineToResponse(fine))
}

func postFinePayment(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	fineID, ok2 := pathID(r, "fine")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	fine, err := be.MarkFinePaid(ctx, u, teamID, fineID)
	// Paying a paid fine is a no-op, not a failure.
	if err != nil && !errors.Is(err, proto.ErrFineAlreadyPaid) {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, fineToResponse(fine))
}

func deleteFine(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	fineID, ok2 := pathID(r, "fine")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	if err := be.DeleteFine(ctx, u, teamID, fineID); err != nil {
		renderError(w, err)
		return
	}

	renderStatus(http.StatusNoContent)(w, r)
}
