package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/mock"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockSessionRepository, *mock.MockUserRepository) {
	t.Helper()

	mockSessions := mock.NewMockSessionRepository(ctrl)
	mockUsers := mock.NewMockUserRepository(ctrl)

	cfg := config.Auth{
		SessionDuration:         720 * time.Hour,
		SessionRenewalThreshold: 168 * time.Hour,
	}
	svc := NewSessionService(mockSessions, mockUsers, cfg, logger.Nop()).(*sessionService)

	return svc, mockSessions, mockUsers
}

// fixedClock pins the service clock for deterministic expiry arithmetic.
func fixedClock(svc *sessionService) time.Time {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return now
}

func TestSessionService_CreateSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, _ := newTestSessionSvc(t, ctrl)
	now := fixedClock(svc)
	ctx := context.Background()

	var stored models.Session
	mockSessions.EXPECT().
		CreateSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) error {
			stored = s
			return nil
		})

	session, err := svc.CreateSession(ctx, "u-1")
	require.NoError(t, err)

	assert.Len(t, session.Token, 64)
	assert.Equal(t, "u-1", session.UserID)
	assert.Equal(t, now.Add(720*time.Hour), session.ExpiresAt)
	assert.Equal(t, stored, session)
}

func TestSessionService_ValidateSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, mockUsers := newTestSessionSvc(t, ctrl)
	now := fixedClock(svc)
	ctx := context.Background()

	// Plenty of lifetime left: no renewal write expected.
	session := models.Session{Token: "tok", UserID: "u-1", ExpiresAt: now.Add(500 * time.Hour)}
	user := models.User{UserID: "u-1", Email: "john@example.com", Role: models.RoleUser}

	mockSessions.EXPECT().FindSession(ctx, "tok").Return(session, nil)
	mockUsers.EXPECT().FindUserByID(ctx, "u-1").Return(user, nil)

	principal, err := svc.ValidateSession(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, user, principal.User)
	assert.False(t, principal.Session.Fresh)
	assert.Equal(t, session.ExpiresAt, principal.Session.ExpiresAt)
}

func TestSessionService_ValidateSession_SlidingRenewal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, mockUsers := newTestSessionSvc(t, ctrl)
	now := fixedClock(svc)
	ctx := context.Background()

	// Under the 168h renewal threshold: expiry must be extended and the
	// session marked fresh for cookie re-issue.
	session := models.Session{Token: "tok", UserID: "u-1", ExpiresAt: now.Add(10 * time.Hour)}

	mockSessions.EXPECT().FindSession(ctx, "tok").Return(session, nil)
	mockUsers.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{UserID: "u-1"}, nil)
	mockSessions.EXPECT().
		UpdateSessionExpiry(ctx, "tok", now.Add(720*time.Hour)).
		Return(nil)

	principal, err := svc.ValidateSession(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, principal.Session.Fresh)
	assert.Equal(t, now.Add(720*time.Hour), principal.Session.ExpiresAt)
}

func TestSessionService_ValidateSession_RenewalLostToLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, mockUsers := newTestSessionSvc(t, ctrl)
	now := fixedClock(svc)
	ctx := context.Background()

	session := models.Session{Token: "tok", UserID: "u-1", ExpiresAt: now.Add(10 * time.Hour)}

	mockSessions.EXPECT().FindSession(ctx, "tok").Return(session, nil)
	mockUsers.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{UserID: "u-1"}, nil)
	mockSessions.EXPECT().
		UpdateSessionExpiry(ctx, "tok", gomock.Any()).
		Return(store.ErrNoSessionWasFound)

	_, err := svc.ValidateSession(ctx, "tok")
	assert.ErrorIs(t, err, ErrSessionExpiredOrInvalid)
}

func TestSessionService_ValidateSession_ExpiredDeletedOnSight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, _ := newTestSessionSvc(t, ctrl)
	now := fixedClock(svc)
	ctx := context.Background()

	session := models.Session{Token: "stale", UserID: "u-1", ExpiresAt: now.Add(-time.Minute)}

	gomock.InOrder(
		mockSessions.EXPECT().FindSession(ctx, "stale").Return(session, nil),
		mockSessions.EXPECT().DeleteSession(ctx, "stale").Return(nil),
	)

	_, err := svc.ValidateSession(ctx, "stale")
	assert.ErrorIs(t, err, ErrSessionExpiredOrInvalid)
}

func TestSessionService_ValidateSession_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().
		FindSession(ctx, "missing").
		Return(models.Session{}, store.ErrNoSessionWasFound)

	_, err := svc.ValidateSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionExpiredOrInvalid)
}

func TestSessionService_ValidateSession_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.ValidateSession(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionExpiredOrInvalid)
}

func TestSessionService_ValidateSession_OrphanedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, mockUsers := newTestSessionSvc(t, ctrl)
	now := fixedClock(svc)
	ctx := context.Background()

	session := models.Session{Token: "tok", UserID: "gone", ExpiresAt: now.Add(500 * time.Hour)}

	mockSessions.EXPECT().FindSession(ctx, "tok").Return(session, nil)
	mockUsers.EXPECT().FindUserByID(ctx, "gone").Return(models.User{}, store.ErrNoUserWasFound)
	mockSessions.EXPECT().DeleteSession(ctx, "tok").Return(nil)

	_, err := svc.ValidateSession(ctx, "tok")
	assert.ErrorIs(t, err, ErrSessionExpiredOrInvalid)
}

func TestSessionService_InvalidateSession_EmptyTokenNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	require.NoError(t, svc.InvalidateSession(context.Background(), ""))
}

func TestSessionService_InvalidateAllSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().DeleteSessionsForUser(ctx, "u-1").Return(nil)

	require.NoError(t, svc.InvalidateAllSessions(ctx, "u-1"))
}

func TestSessionService_PurgeExpiredSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, _ := newTestSessionSvc(t, ctrl)
	now := fixedClock(svc)
	ctx := context.Background()

	mockSessions.EXPECT().DeleteExpiredSessions(ctx, now).Return(int64(7), nil)

	purged, err := svc.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), purged)
}
