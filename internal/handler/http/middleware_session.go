package http

import (
	"context"
	"net/http"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/internal/utils"
)

// session is the authentication gate. It extracts the session cookie,
// resolves it into a Principal via [service.SessionService.ValidateSession],
// and stores the principal in the request context under
// [utils.PrincipalCtxKey] before delegating to the next handler.
//
// Requests without a valid session are rejected with HTTP 401. When sliding
// renewal extended the session, the refreshed cookie is re-issued before the
// downstream handler runs.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := sessionTokenFromRequest(r)
		if err != nil {
			sessionValidationsTotal.WithLabelValues("rejected").Inc()
			log.Debug().Err(err).Msg("request without session cookie")
			writeError(w, service.ErrSessionExpiredOrInvalid)
			return
		}

		ctx := r.Context()
		principal, err := h.services.SessionService.ValidateSession(ctx, token)
		if err != nil {
			sessionValidationsTotal.WithLabelValues("rejected").Inc()
			log.Info().Err(err).Msg("session validation failed")
			// An invalid cookie is useless to the browser; drop it.
			h.clearSessionCookie(w)
			writeError(w, err)
			return
		}

		if principal.Session.Fresh {
			sessionValidationsTotal.WithLabelValues("renewed").Inc()
			h.setSessionCookie(w, principal.Session)
		} else {
			sessionValidationsTotal.WithLabelValues("ok").Inc()
		}

		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
