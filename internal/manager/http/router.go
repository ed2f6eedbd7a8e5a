package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/mail"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/httpx"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/obs"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	logger    *slog.Logger
	startTime time.Time

	Auth      *service.AuthService
	Sessions  *service.SessionService
	Users     *service.UserService
	Configs   *service.ConfigService
	Proxy     *service.ProxyService
	Meetings  *service.MeetingService
	Invites   *service.InviteService
	Bootstrap *service.BootstrapService

	// Mail delivery knobs, wired through to the email handler.
	ResendAPIKey string
	EmailFrom    string
	MailTimeout  time.Duration

	// NewMailer overrides outbound mail construction in tests.
	NewMailer func(mail.Settings) mail.Mailer
}

func NewRouter(logger *slog.Logger, allowedOrigin string) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		logger:    logger,
		startTime: time.Now(),
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowedOrigin),
		obs.Instrument,
	}

	return r
}

func (rt *Router) ApplyRoutes() {
	rt.registerSystem()
	rt.registerAuth()
	rt.registerProxy()
	rt.registerMeetings()
	rt.registerInvites()
	rt.registerEmail()
	rt.registerUsers()
	rt.registerConfig()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (rt *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(rt.Mux, rt.middlewares...).ServeHTTP(w, req)
}

func (rt *Router) registerSystem() {
	h := &SystemHandler{StartTime: rt.startTime}
	rt.Mux.HandleFunc("GET /api/health", h.HandleHealth)
	rt.Mux.Handle("GET /metrics", obs.Handler())
}

func (rt *Router) registerAuth() {
	h := &AuthHandler{Auth: rt.Auth, Users: rt.Users, Bootstrap: rt.Bootstrap}

	rt.Mux.HandleFunc("POST /api/init", h.HandleInit)
	rt.Mux.HandleFunc("POST /api/auth/register", h.HandleRegister)
	rt.Mux.HandleFunc("POST /api/auth/login", h.HandleLogin)

	rt.Mux.Handle("POST /api/auth/logout",
		rt.requireAuth(http.HandlerFunc(h.HandleLogout)))
	rt.Mux.Handle("POST /api/auth/change-password",
		rt.requireAuth(http.HandlerFunc(h.HandleChangePassword)))
}

func (rt *Router) registerProxy() {
	h := &ProxyHandler{Proxy: rt.Proxy}
	rt.Mux.Handle("POST /api/plugnmeet/{endpoint...}",
		rt.requireAuth(http.HandlerFunc(h.HandleCall)))
}

func (rt *Router) registerMeetings() {
	h := &MeetingsHandler{Meetings: rt.Meetings}

	rt.Mux.Handle("GET /api/meetings", rt.requireAuth(http.HandlerFunc(h.HandleList)))
	rt.Mux.Handle("POST /api/meetings", rt.requireAuth(http.HandlerFunc(h.HandleCreate)))
	rt.Mux.Handle("DELETE /api/meetings/{id}", rt.requireAuth(http.HandlerFunc(h.HandleDelete)))
}

func (rt *Router) registerInvites() {
	h := &InvitesHandler{Invites: rt.Invites}

	rt.Mux.Handle("GET /api/invites", rt.requireAuth(http.HandlerFunc(h.HandleList)))
	rt.Mux.Handle("POST /api/invites", rt.requireAuth(http.HandlerFunc(h.HandleCreate)))
	rt.Mux.Handle("DELETE /api/invites/{id}", rt.requireAuth(http.HandlerFunc(h.HandleDelete)))
}

func (rt *Router) registerEmail() {
	h := &EmailHandler{
		Configs:      rt.Configs,
		Invites:      rt.Invites,
		ResendAPIKey: rt.ResendAPIKey,
		EmailFrom:    rt.EmailFrom,
		Timeout:      rt.MailTimeout,
		NewMailer:    rt.NewMailer,
	}
	rt.Mux.Handle("POST /api/email/invite", rt.requireAuth(http.HandlerFunc(h.HandleSendInvite)))
}

func (rt *Router) registerUsers() {
	h := &UsersHandler{Users: rt.Users}

	admin := func(fn http.HandlerFunc) http.Handler {
		return rt.requireAuth(rt.requireAdmin(fn))
	}

	rt.Mux.Handle("GET /api/users", admin(h.HandleList))
	rt.Mux.Handle("POST /api/users", admin(h.HandleCreate))
	rt.Mux.Handle("DELETE /api/users/{id}", admin(h.HandleDelete))
}

func (rt *Router) registerConfig() {
	h := &ConfigHandler{Configs: rt.Configs}

	admin := func(fn http.HandlerFunc) http.Handler {
		return rt.requireAuth(rt.requireAdmin(fn))
	}

	rt.Mux.Handle("GET /api/config", admin(h.HandleGet))
	rt.Mux.Handle("POST /api/config/server", admin(h.HandlePutServer))
	rt.Mux.Handle("POST /api/config/email", admin(h.HandlePutEmail))
}
