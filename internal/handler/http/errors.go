package http

import "errors"

// Sentinel errors used when extracting the session token from an incoming
// request. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the request carries no session
	// cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrEmptySessionCookie is returned when the session cookie is present
	// but holds an empty value.
	ErrEmptySessionCookie = errors.New("empty session cookie")
)
