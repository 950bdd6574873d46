package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

// minPasswordLength is the lower bound enforced at registration and on
// every password change. bcrypt silently truncates above 72 bytes, so the
// upper bound is enforced by utils.HashPassword.
const minPasswordLength = 8

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification against the stored
// bcrypt hash, and the self-service profile mutations.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository is used to revoke sessions when credentials change.
	sessionRepository store.SessionRepository

	// bootstrapAdminEmail and bootstrapAdminPassword seed the first admin
	// account at startup when both are set.
	bootstrapAdminEmail    string
	bootstrapAdminPassword string
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with bootstrap parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		userRepository:         userRepository,
		sessionRepository:      sessionRepository,
		bootstrapAdminEmail:    cfg.BootstrapAdminEmail,
		bootstrapAdminPassword: cfg.BootstrapAdminPassword,
	}
}

// Register creates a new user account with the default "user" role.
//
// It normalises the email, checks the two password fields agree and meet the
// minimum length, hashes the password with bcrypt, and delegates persistence
// to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrPasswordsDoNotMatch if the confirmation does not agree.
//   - ErrWeakPassword if the password is shorter than 8 characters.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, email, password, confirmPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		log.Error().Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if password != confirmPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrWeakPassword
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Theme:        models.DefaultTheme,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by normalised email and verifies the supplied
// password against the stored bcrypt hash. An unknown email and a wrong
// password both yield ErrInvalidCredentials so that login responses do not
// reveal which emails are registered.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, password) {
		log.Info().Str("email", email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// UpdateTheme stores the user's UI theme preference.
func (a *authService) UpdateTheme(ctx context.Context, userID, theme string) error {
	log := logger.FromContext(ctx)

	if theme != "light" && theme != "dark" {
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.UpdateUserTheme(ctx, userID, theme); err != nil {
		log.Err(err).Str("user_id", userID).Msg("theme update failed")
		return fmt.Errorf("theme update failed: %w", err)
	}

	return nil
}

// EnsureBootstrapAdmin creates the seed admin account at startup when both
// bootstrap credentials are configured and no user with that email exists.
// An already-existing account is left untouched, so the bootstrap variables
// can stay set across restarts.
func (a *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.bootstrapAdminEmail == "" || a.bootstrapAdminPassword == "" {
		return nil
	}

	email := normalizeEmail(a.bootstrapAdminEmail)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("bootstrap admin lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(a.bootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Theme:        models.DefaultTheme,
	})
	if err != nil {
		// A concurrent replica may have won the race; that is fine.
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}

	log.Info().Str("user_id", created.UserID).Str("email", email).Msg("bootstrap admin account created")
	return nil
}

// normalizeEmail lower-cases and trims the address so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
