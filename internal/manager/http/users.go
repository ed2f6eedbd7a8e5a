package http

import (
	"encoding/json"
	"net/http"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

// UsersHandler covers admin user management. Every route is admin-gated by
// the router.
type UsersHandler struct {
	Users *service.UserService
}

func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.Users.ListSummaries(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, listUsersResponse{Success: true, Users: users})
}

func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_role")
		return
	}

	user, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, role)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("user created", "user_id", user.ID, "role", user.Role)
	httpx.WriteJSON(w, http.StatusOK, userResponse{Success: true, User: user})
}

func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := principalFrom(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.Users.Delete(ctx, actor.ID, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}
