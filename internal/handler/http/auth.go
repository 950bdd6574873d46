package http

import (
	"encoding/json"
	"net/http"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	// Registration signs the user in immediately.
	session, err := h.services.SessionService.CreateSession(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("session creation after registration failed")
		writeError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	_, _ = utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Info().Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	session, err := h.services.SessionService.CreateSession(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("session creation after login failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, session)
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

// logout revokes the current session. The cookie is always cleared, even
// when the token was already invalid, so logout never fails from the
// browser's point of view.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if token, err := sessionTokenFromRequest(r); err == nil {
		if err := h.services.SessionService.InvalidateSession(ctx, token); err != nil {
			log.Err(err).Msg("session invalidation failed")
		}
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// logoutAll revokes every session of the authenticated user ("log out
// everywhere"). Requires a valid session, unlike plain logout.
func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	if err := h.services.SessionService.InvalidateAllSessions(ctx, principal.User.UserID); err != nil {
		log.Err(err).Msg("bulk session invalidation failed")
		writeError(w, err)
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// authCheck reports whether the request carries a valid session. It is the
// permissive edge used by the frontend on page load: unauthenticated
// callers get 200 with authenticated=false, never a 401.
func (h *Handler) authCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := sessionTokenFromRequest(r)
	if err != nil {
		_, _ = utils.WriteJSON(w, models.AuthCheckResponse{Authenticated: false}, http.StatusOK)
		return
	}

	principal, err := h.services.SessionService.ValidateSession(ctx, token)
	if err != nil {
		h.clearSessionCookie(w)
		_, _ = utils.WriteJSON(w, models.AuthCheckResponse{Authenticated: false}, http.StatusOK)
		return
	}

	if principal.Session.Fresh {
		h.setSessionCookie(w, principal.Session)
	}

	_, _ = utils.WriteJSON(w, models.AuthCheckResponse{
		Authenticated: true,
		UserID:        principal.User.UserID,
		Email:         principal.User.Email,
		Role:          principal.User.Role,
	}, http.StatusOK)
}

// profile returns the authenticated user's own account.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	_, _ = utils.WriteJSON(w, principal.User, http.StatusOK)
}

// updateTheme stores the authenticated user's UI theme preference.
func (h *Handler) updateTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	var req models.UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.AuthService.UpdateTheme(ctx, principal.User.UserID, req.Theme); err != nil {
		log.Err(err).Msg("theme update failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
