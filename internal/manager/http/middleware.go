package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/service"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/slogx"
)

type principalKey struct{}

// principalFrom returns the authenticated user attached by requireAuth.
func principalFrom(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(principalKey{}).(domain.User)
	return u, ok
}

// bearerToken extracts the opaque session token from the Authorization
// header. Empty string when absent or malformed.
func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
}

// requireAuth is the gateway's authentication step. A missing, expired or
// malformed token, or a session whose identity record no longer exists,
// all produce the identical 401 before any handler runs.
func (rt *Router) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := slogx.FromContext(ctx)

		sess, err := rt.Sessions.Resolve(ctx, bearerToken(r))
		if err != nil {
			if !errors.Is(err, service.ErrSessionInvalid) {
				log.Error("session resolve failed", "error", err)
			}
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		user, err := rt.Users.FindByEmail(ctx, sess.Email)
		if err != nil || user.ID != sess.UserID {
			if err != nil && !errors.Is(err, service.ErrUserNotFound) {
				log.Error("principal lookup failed", "error", err)
			}
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, principalKey{}, user)))
	})
}

// requireAdmin gates admin-tier routes. Runs inside requireAuth.
func (rt *Router) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := principalFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		switch user.Role {
		case domain.RoleAdmin:
			next.ServeHTTP(w, r)
		case domain.RoleModerator:
			writeError(w, http.StatusForbidden, "admin_only")
		default:
			// Unknown role in storage: treat as the lower tier.
			writeError(w, http.StatusForbidden, "admin_only")
		}
	})
}
