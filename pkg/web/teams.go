package web

import (
	"net/http"

	"github.com/teamwallet/teamwallet/pkg/access"
	"github.com/teamwallet/teamwallet/pkg/backend"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func getTeams(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teams, err := be.ListTeams(ctx, u)
	if err != nil {
		renderError(w, err)
		return
	}

	res := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		res = append(res, teamToResponse(t))
	}
	renderJSON(w, http.StatusOK, res)
}

func postTeam(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}

	team, err := be.CreateTeam(ctx, u, req.Name)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, teamToResponse(team))
}

func getTeam(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	team, err := be.Team(ctx, u, teamID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, teamToResponse(team))
}

func patchTeam(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	var req struct {
		Name          string `json:"name"`
		Premium       bool   `json:"premium"`
		PaymentHandle string `json:"payment_handle"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}

	team, err := be.UpdateTeam(ctx, u, teamID, req.Name, req.Premium, req.PaymentHandle)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, teamToResponse(team))
}

func deleteTeam(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	if err := be.DeleteTeam(ctx, u, teamID); err != nil {
		renderError(w, err)
		return
	}

	renderStatus(http.StatusNoContent)(w, r)
}

func getMembers(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	members, err := be.TeamMembers(ctx, u, teamID)
	if err != nil {
		renderError(w, err)
		return
	}

	res := make([]memberResponse, 0, len(members))
	for _, m := range members {
		res = append(res, memberToResponse(m))
	}
	renderJSON(w, http.StatusOK, res)
}

func patchMember(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	memberID, ok2 := pathID(r, "member")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	var req struct {
		Role string `json:"role"`
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

	m, err := be.ChangeRole(ctx, u, teamID, memberID, role)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, memberToResponse(m))
}

func deleteMember(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	memberID, ok2 := pathID(r, "member")
	if !ok || !ok2 {
		renderNotFound(w, r)
		return
	}

	if err := be.RemoveMember(ctx, u, teamID, memberID); err != nil {
		renderError(w, err)
		return
	}

	renderStatus(http.StatusNoContent)(w, r)
}

func getUnread(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	unread, err := be.Unread(ctx, u, teamID)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, unread)
}

func postSeen(w http.ResponseWriter, r *http.Request, u proto.User) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teamID, ok := pathID(r, "team")
	if !ok {
		renderNotFound(w, r)
		return
	}

	var req struct {
		Category string `json:"category"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}

	var category proto.NotificationCategory
	switch req.Category {
	case "dashboard":
		category = proto.NotifyDashboard
	case "fines":
		category = proto.NotifyFines
	case "expenses":
		category = proto.NotifyExpenses
	default:
		renderStatus(http.StatusBadRequest)(w, r)
		return
	}

	if err := be.MarkSeen(ctx, u, teamID, category); err != nil {
		renderError(w, err)
		return
	}

	renderStatus(http.StatusNoContent)(w, r)
}
