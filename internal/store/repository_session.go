package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// Every write is a single-row atomic statement; the session data model has
// no multi-row invariants that would require transactions.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createSession, session.Token, session.UserID, session.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindSession looks up a session by its token. Returns
// [ErrNoSessionWasFound] when no row matches; expiry is NOT checked here —
// that is the session manager's concern.
func (r *sessionRepository) FindSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, findSession, token)

	if err := row.Scan(&session.Token, &session.UserID, &session.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// UpdateSessionExpiry extends a session's lifetime in a single atomic
// update. Returns [ErrNoSessionWasFound] when the token matches no row
// (e.g. a concurrent logout won the race).
func (r *sessionRepository) UpdateSessionExpiry(ctx context.Context, token string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateSessionExpiry, expiresAt, token)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateSessionExpiry").Msg("error updating session expiry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoSessionWasFound
	}

	return nil
}

// DeleteSession removes a session row. Idempotent: deleting an absent
// session is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSessionsForUser removes every session owned by the user
// ("log out everywhere"). Idempotent.
func (r *sessionRepository) DeleteSessionsForUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSessionsForUser, userID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionsForUser").Msg("error deleting user sessions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions sweeps every session whose expiry lies at or before
// now and reports how many rows were removed. Used by the purge worker.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredSessions, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error purging sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
