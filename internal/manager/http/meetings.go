package http

import (
	"encoding/json"
	"net/http"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

type MeetingsHandler struct {
	Meetings *service.MeetingService
}

func (h *MeetingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	meetings, err := h.Meetings.List(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listMeetingsResponse{Success: true, Meetings: meetings})
}

func (h *MeetingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := principalFrom(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var m domain.Meeting
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	created, err := h.Meetings.Create(ctx, actor.ID, m)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, meetingResponse{Success: true, Meeting: created})
}

func (h *MeetingsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.Meetings.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}
