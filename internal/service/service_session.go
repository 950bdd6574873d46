package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

// sessionService is the concrete implementation of SessionService.
//
// Sessions are opaque random tokens stored server-side, so every one of them
// can be revoked instantly. Validation applies sliding renewal: a session
// whose remaining lifetime has dropped under the renewal threshold gets its
// expiry pushed out and is marked Fresh so the transport layer re-issues the
// cookie.
type sessionService struct {
	sessionRepository store.SessionRepository
	userRepository    store.UserRepository

	// sessionDuration is the absolute lifetime granted at creation and on
	// each renewal.
	sessionDuration time.Duration

	// renewalThreshold bounds how much lifetime may remain before a renewal
	// write happens. Keeping it well under sessionDuration means most
	// validations are read-only.
	renewalThreshold time.Duration

	// now is the clock, injectable for tests.
	now func() time.Time
}

// NewSessionService constructs a SessionService with lifecycle parameters
// from cfg. The returned service is safe for concurrent use. Methods log
// through the request-scoped logger from the context.
func NewSessionService(sessionRepository store.SessionRepository, userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) SessionService {
	logger.Debug().Msg("creating session service")
	return &sessionService{
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
		sessionDuration:   cfg.SessionDuration,
		renewalThreshold:  cfg.SessionRenewalThreshold,
		now:               time.Now,
	}
}

// CreateSession mints a fresh opaque token for the user and persists it.
// Called after successful login; the caller sets the cookie.
func (s *sessionService) CreateSession(ctx context.Context, userID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.NewSessionToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, fmt.Errorf("session token generation failed: %w", err)
	}

	session := models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: s.now().Add(s.sessionDuration),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("user_id", userID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// ValidateSession resolves a token into a Principal.
//
// An unknown token and an expired one both yield ErrSessionExpiredOrInvalid;
// expired rows are deleted on sight so the table does not depend on the
// purge worker alone. The owning user is re-read on every call, which makes
// role changes and account deletion take effect on the next request.
//
// When the session's remaining lifetime is under the renewal threshold its
// expiry is extended and the returned session is marked Fresh.
func (s *sessionService) ValidateSession(ctx context.Context, token string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.Principal{}, ErrSessionExpiredOrInvalid
	}

	session, err := s.sessionRepository.FindSession(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNoSessionWasFound) {
			return models.Principal{}, ErrSessionExpiredOrInvalid
		}

		log.Err(err).Msg("session lookup failed")
		return models.Principal{}, fmt.Errorf("session lookup failed: %w", err)
	}

	now := s.now()
	if session.Expired(now) {
		// Best effort; the purge worker will catch it otherwise.
		_ = s.sessionRepository.DeleteSession(ctx, token)
		return models.Principal{}, ErrSessionExpiredOrInvalid
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// Orphaned session for a deleted account.
			_ = s.sessionRepository.DeleteSession(ctx, token)
			return models.Principal{}, ErrSessionExpiredOrInvalid
		}

		log.Err(err).Str("user_id", session.UserID).Msg("session owner lookup failed")
		return models.Principal{}, fmt.Errorf("session owner lookup failed: %w", err)
	}

	if session.ExpiresAt.Sub(now) < s.renewalThreshold {
		newExpiry := now.Add(s.sessionDuration)
		switch err := s.sessionRepository.UpdateSessionExpiry(ctx, token, newExpiry); {
		case err == nil:
			session.ExpiresAt = newExpiry
			session.Fresh = true
		case errors.Is(err, store.ErrNoSessionWasFound):
			// A concurrent logout revoked the session mid-request.
			return models.Principal{}, ErrSessionExpiredOrInvalid
		default:
			// Renewal is an optimisation; the session is still valid.
			log.Err(err).Msg("session renewal failed")
		}
	}

	return models.Principal{User: user, Session: session}, nil
}

// InvalidateSession revokes a single session (logout). Idempotent.
func (s *sessionService) InvalidateSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil
	}

	if err := s.sessionRepository.DeleteSession(ctx, token); err != nil {
		log.Err(err).Msg("session invalidation failed")
		return fmt.Errorf("session invalidation failed: %w", err)
	}

	return nil
}

// InvalidateAllSessions revokes every session owned by the user. Used for
// "log out everywhere" and after an administrative password reset.
func (s *sessionService) InvalidateAllSessions(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := s.sessionRepository.DeleteSessionsForUser(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("bulk session invalidation failed")
		return fmt.Errorf("bulk session invalidation failed: %w", err)
	}

	return nil
}

// PurgeExpiredSessions sweeps expired rows and reports how many were
// removed. Called by the background purge worker.
func (s *sessionService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	purged, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("expired session purge failed: %w", err)
	}

	return purged, nil
}
