package http

import (
	"net/http"
	"time"

	"github.com/vitalog/vitalog/models"
)

// sessionCookieName is the name of the cookie carrying the opaque session
// token. The token never travels anywhere else (no Authorization header).
const sessionCookieName = "vitalog_session"

// setSessionCookie writes the session cookie for a freshly created or
// renewed session. HttpOnly keeps the token away from page scripts;
// SameSite=Lax blocks cross-site POSTs while keeping top-level navigation
// working.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie overwrites the session cookie with an expired empty
// value, removing it from the browser.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionTokenFromRequest extracts the session token from the request
// cookie.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] — if the cookie is absent.
//   - [ErrEmptySessionCookie] — if the cookie exists with an empty value.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}
	if cookie.Value == "" {
		return "", ErrEmptySessionCookie
	}

	return cookie.Value, nil
}
