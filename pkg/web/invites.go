package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/backend"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func getInvites(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	invites, err := be.ListInvites(ctx, u, teamID)
	if err != nil {
		renderError(w, err)
		return
	}

	res := make([]inviteResponse, 0, len(invites))
	for _, i := range invites {
		res = append(res, inviteToResponse(i))
	}
	renderJSON(w, http.StatusOK, res)
}

func postInvite(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	var req struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}
	role, err := access.ParseRole(req.Role)
	if err != nil {
		renderError(w, err)
		return
	}

	invite, token, err := be.CreateInvite(ctx, u, teamID, req.Email, role)
	if err != nil {
		renderError(w, err)
		return
	}

	// The raw token is only ever in this response.
	res := inviteToResponse(invite)
	res.Token = token
	renderJSON(w, http.StatusCreated, res)
}

func deleteInvite(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	inviteID, ok2 := pathID(r, "invite")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	if err := be.RevokeInvite(ctx, u, teamID, inviteID); err != nil {
		renderError(w, err)
		return
	}

	renderStatus(http.StatusNoContent)(w, r)
}

// getInvitePreview resolves an invite token to the team behind it without
// consuming it. It needs no session so a prospective member can inspect an
// invite before registering.
func getInvitePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	invite, team, err := be.ResolveInvite(ctx, mux.Vars(r)["token"])
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, struct {
		Team      teamResponse `json:"team"`
		Role      access.Role  `json:"role"`
		ExpiresAt int64        `json:"expires_at"`
	}{
		Team:      teamToResponse(team),
		Role:      invite.Role,
		ExpiresAt: invite.ExpiresAt.Unix(),
	})
}

func postInviteAccept(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	m, err := be.AcceptInvite(ctx, u, mux.Vars(r)["token"])
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, memberToResponse(m))
}
