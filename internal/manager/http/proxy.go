package http

import (
	"io"
	"net/http"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

// Maximum proxied request body. Meeting-server payloads are small JSON
// documents.
const maxProxyBody = 1 << 20

// ProxyHandler relays signed calls to the meeting server. The request body
// is captured once and signed as-is; the upstream response is relayed
// verbatim.
type ProxyHandler struct {
	Proxy *service.ProxyService
}

func (h *ProxyHandler) HandleCall(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxProxyBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	res, err := h.Proxy.Call(ctx, r.PathValue("endpoint"), body)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(res.Body)
}
