package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

// authzService is the concrete implementation of AuthzService.
type authzService struct {
	userRepository store.UserRepository
}

// NewAuthzService constructs an AuthzService backed by the user store.
func NewAuthzService(userRepository store.UserRepository, logger *logger.Logger) AuthzService {
	logger.Debug().Msg("creating authz service")
	return &authzService{
		userRepository: userRepository,
	}
}

// RequireRole re-reads the principal's account and checks its current role.
// The re-read is deliberate: a role carried inside the principal was loaded
// at session validation time and could predate a demotion within the same
// request pipeline.
//
// Returns the freshly loaded user or:
//   - ErrSessionExpiredOrInvalid if the account no longer exists.
//   - ErrInsufficientRole if the current role does not satisfy role.
func (a *authzService) RequireRole(ctx context.Context, principal models.Principal, role models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, principal.User.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrSessionExpiredOrInvalid
		}

		log.Err(err).Str("user_id", principal.User.UserID).Msg("authorization user lookup failed")
		return models.User{}, fmt.Errorf("authorization user lookup failed: %w", err)
	}

	if !user.Role.Satisfies(role) {
		log.Info().
			Str("user_id", user.UserID).
			Str("have", string(user.Role)).
			Str("want", string(role)).
			Msg("role check failed")
		return models.User{}, ErrInsufficientRole
	}

	return user, nil
}

// RequireAdmin is RequireRole specialised to the admin role.
func (a *authzService) RequireAdmin(ctx context.Context, principal models.Principal) (models.User, error) {
	return a.RequireRole(ctx, principal, models.RoleAdmin)
}
