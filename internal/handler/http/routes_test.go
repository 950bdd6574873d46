package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/models"
)

// These tests drive real requests through the assembled router, so the full
// middleware chain (trace id, logging, metrics, gates) is exercised.

func TestRouter_MetricsEndpointIsPublic(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRouter_ProtectedRouteRequiresSession(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/profile")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRouter_AdminRouteRejectsRegularUser(t *testing.T) {
	sessions := &mockSessionService{
		validateSessionFn: func(_ context.Context, _ string) (models.Principal, error) {
			return testPrincipal(), nil
		},
	}
	authz := &mockAuthzService{
		requireRoleFn: func(_ context.Context, _ models.Principal, _ models.Role) (models.User, error) {
			return models.User{}, service.ErrInsufficientRole
		},
	}
	h := newTestHandler(t, &service.Services{SessionService: sessions, AuthzService: authz})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/admin/users", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid-token"})

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRouter_TraceIDHeaderIsSet(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/auth/check")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.NotEmpty(t, res.Header.Get("X-Trace-ID"))
}
