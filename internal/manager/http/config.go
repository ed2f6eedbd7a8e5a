package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

// ConfigHandler exposes the two SecretConfigs. Secrets only ever leave here
// masked; writes are merge-protected against masked resubmissions.
type ConfigHandler struct {
	Configs *service.ConfigService
}

func (h *ConfigHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	server, err := h.Configs.Get(ctx, domain.ConfigServer)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeServiceError(w, log, err)
		return
	}

	email, err := h.Configs.Get(ctx, domain.ConfigEmail)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeServiceError(w, log, err)
		return
	}
	if email == nil {
		email = domain.SecretConfig{domain.FieldFrom: ""}
	}

	httpx.WriteJSON(w, http.StatusOK, configResponse{
		Success:      true,
		ServerConfig: server,
		EmailConfig:  email,
	})
}

func (h *ConfigHandler) HandlePutServer(w http.ResponseWriter, r *http.Request) {
	h.put(w, r, domain.ConfigServer)
}

func (h *ConfigHandler) HandlePutEmail(w http.ResponseWriter, r *http.Request) {
	h.put(w, r, domain.ConfigEmail)
}

func (h *ConfigHandler) put(w http.ResponseWriter, r *http.Request, name string) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var cfg domain.SecretConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	if err := h.Configs.Put(ctx, name, cfg); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info("config updated", "config", name)
	httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}
