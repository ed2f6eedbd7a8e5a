package http

import (
	"encoding/json"
	"net/http"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

type InvitesHandler struct {
	Invites *service.InviteService
}

func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invites, err := h.Invites.List(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listInvitesResponse{Success: true, Invites: invites})
}

func (h *InvitesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := principalFrom(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var inv domain.Invite
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	created, err := h.Invites.Create(ctx, actor.ID, inv)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inviteResponse{Success: true, Invite: created})
}

func (h *InvitesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.Invites.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}
