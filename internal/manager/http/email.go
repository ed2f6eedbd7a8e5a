package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/mail"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

// EmailHandler renders and dispatches invite emails. Provider settings come
// from the stored email config; the deployment-level Resend key is the
// fallback.
type EmailHandler struct {
	Configs *service.ConfigService
	Invites *service.InviteService

	ResendAPIKey string
	EmailFrom    string
	Timeout      time.Duration

	// NewMailer is swapped in tests; defaults to mail.New.
	NewMailer func(mail.Settings) mail.Mailer
}

func (h *EmailHandler) HandleSendInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sendInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.To == "" || req.MeetingTitle == "" {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	subject, html, err := mail.RenderInvite(mail.InviteParams{
		Name:         req.Name,
		MeetingTitle: req.MeetingTitle,
		JoinLink:     req.JoinLink,
		Moderator:    req.IsAdmin,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	cfg, err := h.Configs.MailSettings(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	settings := mail.Settings{
		Provider:     cfg[domain.FieldProvider],
		APIKey:       cfg[domain.FieldAPIKey],
		APISecret:    cfg[domain.FieldAPISecret],
		From:         cfg[domain.FieldFrom],
		ResendAPIKey: h.ResendAPIKey,
	}
	if settings.From == "" {
		settings.From = h.EmailFrom
	}

	mailer := h.mailer(settings)
	if err := mailer.Send(ctx, req.To, subject, html); err != nil {
		log.Error("invite email delivery failed", "error", err, "to", req.To)
		writeError(w, http.StatusBadGateway, "delivery_failed")
		return
	}

	if req.InviteID != "" {
		if err := h.Invites.MarkSent(ctx, req.InviteID); err != nil {
			log.Warn("failed to mark invite sent", "error", err, "invite_id", req.InviteID)
		}
	}

	log.Info("invite email sent", "to", req.To)
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *EmailHandler) mailer(settings mail.Settings) mail.Mailer {
	if h.NewMailer != nil {
		return h.NewMailer(settings)
	}

	timeout := h.Timeout
	if timeout <= 0 {
		timeout = mail.DefaultTimeout
	}
	return mail.New(settings, &http.Client{Timeout: timeout})
}
