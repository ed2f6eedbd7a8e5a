package http

import (
	"encoding/json"
	"net/http"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

// AuthHandler owns login, logout, password change and first-run init.
type AuthHandler struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Bootstrap *service.BootstrapService
}

// HandleInit seeds the first admin account while no users exist.
func (h *AuthHandler) HandleInit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	admin, err := h.Bootstrap.Initialize(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("bootstrap admin created", "email", admin.Email)
	httpx.WriteJSON(w, http.StatusOK, userResponse{Success: true, User: admin})
}

// HandleRegister always refuses: accounts are provisioned by an admin.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusForbidden, "registration_disabled")
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	token, user, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, loginResponse{Success: true, Token: token, User: user})
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.Auth.Logout(ctx, bearerToken(r)); err != nil {
		writeServiceError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := principalFrom(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	if err := h.Auth.ChangePassword(ctx, user, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}
