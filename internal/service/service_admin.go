package service

import (
	"context"
	"fmt"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

// adminService is the concrete implementation of AdminService.
//
// Two invariants protect the system from locking itself out:
//   - an admin cannot change their own role (ErrSelfRoleChange);
//   - an admin cannot delete their own account (ErrSelfDeletion).
//
// Both are checked against the acting admin's ID, not their email, so they
// hold even if the admin renames their account.
type adminService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
}

// NewAdminService constructs an AdminService wired to the user and session
// repositories. Session access is needed because role changes, password
// resets, and deletions all revoke the target's sessions.
func NewAdminService(userRepository store.UserRepository, sessionRepository store.SessionRepository, logger *logger.Logger) AdminService {
	logger.Debug().Msg("creating admin service")
	return &adminService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
	}
}

// ListUsers returns every account ordered by creation time.
func (a *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// CreateUser provisions an account with an explicit role, bypassing the
// public registration flow. Used by the back-office to add users directly.
func (a *adminService) CreateUser(ctx context.Context, email, password string, role models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrWeakPassword
	}
	if !role.Valid() {
		return models.User{}, ErrUnknownRole
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Theme:        models.DefaultTheme,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("admin user creation ended with error")
		return models.User{}, fmt.Errorf("admin user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.UserID).Str("role", string(role)).Msg("user created by admin")
	return created, nil
}

// UpdateUserRole changes the target account's role and revokes the target's
// sessions so the new role is picked up by a fresh login. Rejects
// actorID == targetID with ErrSelfRoleChange.
func (a *adminService) UpdateUserRole(ctx context.Context, actorID, targetID string, role models.Role) error {
	log := logger.FromContext(ctx)

	if !role.Valid() {
		return ErrUnknownRole
	}
	if actorID == targetID {
		return ErrSelfRoleChange
	}

	if err := a.userRepository.UpdateUserRole(ctx, targetID, role); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("role update failed")
		return fmt.Errorf("role update failed: %w", err)
	}

	if err := a.sessionRepository.DeleteSessionsForUser(ctx, targetID); err != nil {
		// The role change itself already took effect; validation re-reads
		// the role on every request, so stale sessions are not dangerous.
		log.Err(err).Str("target_id", targetID).Msg("session revocation after role change failed")
	}

	log.Info().Str("target_id", targetID).Str("role", string(role)).Msg("user role updated")
	return nil
}

// ResetUserPassword replaces the target's password hash and revokes every
// session the target holds.
func (a *adminService) ResetUserPassword(ctx context.Context, targetID, newPassword string) error {
	log := logger.FromContext(ctx)

	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdateUserPassword(ctx, targetID, hash); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("password reset failed")
		return fmt.Errorf("password reset failed: %w", err)
	}

	if err := a.sessionRepository.DeleteSessionsForUser(ctx, targetID); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("session revocation after password reset failed")
		return fmt.Errorf("session revocation after password reset failed: %w", err)
	}

	log.Info().Str("target_id", targetID).Msg("user password reset by admin")
	return nil
}

// DeleteUser removes the target account. Sessions and owned domain rows go
// with it via ON DELETE CASCADE. Rejects actorID == targetID with
// ErrSelfDeletion.
func (a *adminService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	log := logger.FromContext(ctx)

	if actorID == targetID {
		return ErrSelfDeletion
	}

	if err := a.userRepository.DeleteUser(ctx, targetID); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	log.Info().Str("target_id", targetID).Msg("user deleted by admin")
	return nil
}
