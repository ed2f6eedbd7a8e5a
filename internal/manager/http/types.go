package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/pnm"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
)

// errorResponse is the uniform failure envelope. The error field carries a
// short machine-readable reason; internal detail never leaves the process.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool               `json:"success"`
	Token   string             `json:"token"`
	User    domain.UserSummary `json:"user"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userResponse struct {
	Success bool               `json:"success"`
	User    domain.UserSummary `json:"user"`
}

type listUsersResponse struct {
	Success bool                 `json:"success"`
	Users   []domain.UserSummary `json:"users"`
}

type configResponse struct {
	Success      bool                `json:"success"`
	ServerConfig domain.SecretConfig `json:"serverConfig"`
	EmailConfig  domain.SecretConfig `json:"emailConfig"`
}

type meetingResponse struct {
	Success bool           `json:"success"`
	Meeting domain.Meeting `json:"meeting"`
}

type listMeetingsResponse struct {
	Success  bool             `json:"success"`
	Meetings []domain.Meeting `json:"meetings"`
}

type inviteResponse struct {
	Success bool          `json:"success"`
	Invite  domain.Invite `json:"invite"`
}

type listInvitesResponse struct {
	Success bool            `json:"success"`
	Invites []domain.Invite `json:"invites"`
}

type sendInviteRequest struct {
	To           string `json:"to"`
	Name         string `json:"name"`
	MeetingTitle string `json:"meetingTitle"`
	JoinLink     string `json:"joinLink"`
	IsAdmin      bool   `json:"isAdmin"`
	InviteID     string `json:"inviteId,omitempty"`
}

func writeError(w http.ResponseWriter, code int, reason string) {
	httpx.WriteJSON(w, code, errorResponse{Error: reason})
}

// writeServiceError maps the service error taxonomy onto stable status codes
// and reasons. Anything unrecognized is logged and surfaced as a generic
// internal error.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
	case errors.Is(err, service.ErrSessionInvalid):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, "password_too_short")
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidMeeting),
		errors.Is(err, service.ErrInvalidInvite):
		writeError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email_exists")
	case errors.Is(err, service.ErrSelfDelete):
		writeError(w, http.StatusForbidden, "cannot_delete_self")
	case errors.Is(err, service.ErrAlreadyInitialized):
		writeError(w, http.StatusBadRequest, "already_initialized")
	case errors.Is(err, service.ErrNotConfigured):
		writeError(w, http.StatusBadRequest, "not_configured")
	case errors.Is(err, pnm.ErrUpstream):
		writeError(w, http.StatusBadGateway, "upstream_unavailable")
	default:
		log.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}
