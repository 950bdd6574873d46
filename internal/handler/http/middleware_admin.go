package http

import (
	"net/http"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/internal/utils"
)

// admin is the authorization gate for the back-office surface. It runs after
// the session gate, re-checks the caller's role through
// [service.AuthzService.RequireAdmin], and rejects non-admins with HTTP 403.
//
// The role is re-read from the store inside RequireAdmin, so a demotion is
// effective on the very next request even while the session stays valid.
func (h *Handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		principal, ok := utils.GetPrincipalFromContext(ctx)
		if !ok {
			// Route wired without the session gate; treat as unauthenticated.
			log.Error().Msg("admin gate reached without principal in context")
			writeError(w, service.ErrSessionExpiredOrInvalid)
			return
		}

		if _, err := h.services.AuthzService.RequireAdmin(ctx, principal); err != nil {
			log.Info().Err(err).Str("user_id", principal.User.UserID).Msg("admin access denied")
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
