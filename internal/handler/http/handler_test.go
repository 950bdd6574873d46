package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/models"
)

// Function-field mocks of the service interfaces. Each method field can be
// overridden per test case; unset fields panic, which surfaces unexpected
// calls immediately.

type mockAuthService struct {
	registerFn    func(ctx context.Context, email, password, confirmPassword string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	updateThemeFn func(ctx context.Context, userID, theme string) error
}

func (m *mockAuthService) Register(ctx context.Context, email, password, confirmPassword string) (models.User, error) {
	return m.registerFn(ctx, email, password, confirmPassword)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) UpdateTheme(ctx context.Context, userID, theme string) error {
	return m.updateThemeFn(ctx, userID, theme)
}

func (m *mockAuthService) EnsureBootstrapAdmin(ctx context.Context) error {
	return nil
}

type mockSessionService struct {
	createSessionFn         func(ctx context.Context, userID string) (models.Session, error)
	validateSessionFn       func(ctx context.Context, token string) (models.Principal, error)
	invalidateSessionFn     func(ctx context.Context, token string) error
	invalidateAllSessionsFn func(ctx context.Context, userID string) error
}

func (m *mockSessionService) CreateSession(ctx context.Context, userID string) (models.Session, error) {
	return m.createSessionFn(ctx, userID)
}

func (m *mockSessionService) ValidateSession(ctx context.Context, token string) (models.Principal, error) {
	return m.validateSessionFn(ctx, token)
}

func (m *mockSessionService) InvalidateSession(ctx context.Context, token string) error {
	return m.invalidateSessionFn(ctx, token)
}

func (m *mockSessionService) InvalidateAllSessions(ctx context.Context, userID string) error {
	return m.invalidateAllSessionsFn(ctx, userID)
}

func (m *mockSessionService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockAuthzService struct {
	requireRoleFn func(ctx context.Context, principal models.Principal, role models.Role) (models.User, error)
}

func (m *mockAuthzService) RequireRole(ctx context.Context, principal models.Principal, role models.Role) (models.User, error) {
	return m.requireRoleFn(ctx, principal, role)
}

func (m *mockAuthzService) RequireAdmin(ctx context.Context, principal models.Principal) (models.User, error) {
	return m.requireRoleFn(ctx, principal, models.RoleAdmin)
}

type mockAdminService struct {
	listUsersFn         func(ctx context.Context) ([]models.User, error)
	createUserFn        func(ctx context.Context, email, password string, role models.Role) (models.User, error)
	updateUserRoleFn    func(ctx context.Context, actorID, targetID string, role models.Role) error
	resetUserPasswordFn func(ctx context.Context, targetID, newPassword string) error
	deleteUserFn        func(ctx context.Context, actorID, targetID string) error
}

func (m *mockAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockAdminService) CreateUser(ctx context.Context, email, password string, role models.Role) (models.User, error) {
	return m.createUserFn(ctx, email, password, role)
}

func (m *mockAdminService) UpdateUserRole(ctx context.Context, actorID, targetID string, role models.Role) error {
	return m.updateUserRoleFn(ctx, actorID, targetID, role)
}

func (m *mockAdminService) ResetUserPassword(ctx context.Context, targetID, newPassword string) error {
	return m.resetUserPasswordFn(ctx, targetID, newPassword)
}

func (m *mockAdminService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	return m.deleteUserFn(ctx, actorID, targetID)
}

type mockFastService struct {
	startFastFn   func(ctx context.Context, userID string, targetHours int) (models.Fast, error)
	currentFastFn func(ctx context.Context, userID string) (models.Fast, error)
	finishFastFn  func(ctx context.Context, userID, id string) error
	listFastsFn   func(ctx context.Context, userID string) ([]models.Fast, error)
	deleteFastFn  func(ctx context.Context, userID, id string) error
}

func (m *mockFastService) StartFast(ctx context.Context, userID string, targetHours int) (models.Fast, error) {
	return m.startFastFn(ctx, userID, targetHours)
}

func (m *mockFastService) CurrentFast(ctx context.Context, userID string) (models.Fast, error) {
	return m.currentFastFn(ctx, userID)
}

func (m *mockFastService) FinishFast(ctx context.Context, userID, id string) error {
	return m.finishFastFn(ctx, userID, id)
}

func (m *mockFastService) ListFasts(ctx context.Context, userID string) ([]models.Fast, error) {
	return m.listFastsFn(ctx, userID)
}

func (m *mockFastService) DeleteFast(ctx context.Context, userID, id string) error {
	return m.deleteFastFn(ctx, userID, id)
}

// newTestHandler builds a Handler over the given partially mocked services.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, config.Auth{}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// testPrincipal is a convenience fixture for an authenticated regular user.
func testPrincipal() models.Principal {
	return models.Principal{
		User: models.User{
			UserID: "u-1",
			Email:  "alice@example.com",
			Role:   models.RoleUser,
		},
		Session: models.Session{
			Token:     "valid-token",
			UserID:    "u-1",
			ExpiresAt: time.Now().Add(300 * time.Hour),
		},
	}
}
