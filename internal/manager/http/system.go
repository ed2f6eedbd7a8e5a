package http

import (
	"net/http"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
)

type SystemHandler struct {
	StartTime time.Time
}

type healthResponse struct {
	Status string `json:"status"`
	Time   int64  `json:"time"`
	Uptime string `json:"uptime"`
}

// HandleHealth is the public liveness probe.
func (h *SystemHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Time:   time.Now().UnixMilli(),
		Uptime: time.Since(h.StartTime).Round(time.Second).String(),
	})
}
