package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/mock"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

func newTestAdminSvc(t *testing.T, ctrl *gomock.Controller) (AdminService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)
	svc := NewAdminService(mockUsers, mockSessions, logger.Nop())

	return svc, mockUsers, mockSessions
}

func TestAdminService_CreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "new@example.com", u.Email)
			assert.Equal(t, models.RoleAdmin, u.Role)
			assert.True(t, utils.VerifyPassword(u.PasswordHash, "initial-pass"))

			u.UserID = "u-2"
			return u, nil
		})

	created, err := svc.CreateUser(ctx, "New@Example.com", "initial-pass", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "u-2", created.UserID)
}

func TestAdminService_CreateUser_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAdminSvc(t, ctrl)

	_, err := svc.CreateUser(context.Background(), "new@example.com", "initial-pass", models.Role("superuser"))
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestAdminService_CreateUser_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAdminSvc(t, ctrl)

	_, err := svc.CreateUser(context.Background(), "new@example.com", "short", models.RoleUser)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAdminService_UpdateUserRole_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockSessions := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockUsers.EXPECT().UpdateUserRole(ctx, "u-2", models.RoleAdmin).Return(nil),
		mockSessions.EXPECT().DeleteSessionsForUser(ctx, "u-2").Return(nil),
	)

	require.NoError(t, svc.UpdateUserRole(ctx, "admin-1", "u-2", models.RoleAdmin))
}

func TestAdminService_UpdateUserRole_SelfChangeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAdminSvc(t, ctrl)

	err := svc.UpdateUserRole(context.Background(), "admin-1", "admin-1", models.RoleUser)
	assert.ErrorIs(t, err, ErrSelfRoleChange)
}

func TestAdminService_UpdateUserRole_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAdminSvc(t, ctrl)

	err := svc.UpdateUserRole(context.Background(), "admin-1", "u-2", models.Role("owner"))
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestAdminService_ResetUserPassword_RevokesSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockSessions := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockUsers.EXPECT().
			UpdateUserPassword(ctx, "u-2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, hash string) error {
				assert.True(t, utils.VerifyPassword(hash, "new-password"))
				return nil
			}),
		mockSessions.EXPECT().DeleteSessionsForUser(ctx, "u-2").Return(nil),
	)

	require.NoError(t, svc.ResetUserPassword(ctx, "u-2", "new-password"))
}

func TestAdminService_ResetUserPassword_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAdminSvc(t, ctrl)

	err := svc.ResetUserPassword(context.Background(), "u-2", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAdminService_DeleteUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().DeleteUser(ctx, "u-2").Return(nil)

	require.NoError(t, svc.DeleteUser(ctx, "admin-1", "u-2"))
}

func TestAdminService_DeleteUser_SelfDeletionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAdminSvc(t, ctrl)

	err := svc.DeleteUser(context.Background(), "admin-1", "admin-1")
	assert.ErrorIs(t, err, ErrSelfDeletion)
}

func TestAdminService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		ListUsers(ctx).
		Return([]models.User{{UserID: "u-1"}, {UserID: "u-2"}}, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
