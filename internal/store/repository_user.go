package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and the admin mutations against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. A missing UserID is filled with a
// fresh UUID and CreatedAt is stamped server-side, so the returned
// [models.User] is the canonical representation of the account.
//
// Error handling:
//   - UNIQUE violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.UserID == "" {
		user.UserID = utils.NewUUID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, createUser,
		user.UserID, user.Email, user.PasswordHash, user.Role, user.Theme, user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.classifier.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves a user record by its unique email.
//
// Returns [ErrNoUserWasFound] when no account matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves a user record by its opaque identifier.
//
// Returns [ErrNoUserWasFound] when no account matches.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Role, &user.Theme, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns every account ordered by creation time. Used by the
// admin back-office only.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Role, &user.Theme, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUserRole sets the account's role. Returns [ErrNoUserWasFound] when
// the id matches no row.
func (r *userRepository) UpdateUserRole(ctx context.Context, id string, role models.Role) error {
	return r.execOnUser(ctx, "*userRepository.UpdateUserRole", updateUserRole, role, id)
}

// UpdateUserPassword replaces the stored password hash. Returns
// [ErrNoUserWasFound] when the id matches no row.
func (r *userRepository) UpdateUserPassword(ctx context.Context, id string, passwordHash string) error {
	return r.execOnUser(ctx, "*userRepository.UpdateUserPassword", updateUserPassword, passwordHash, id)
}

// UpdateUserTheme stores the UI theme preference. Returns
// [ErrNoUserWasFound] when the id matches no row.
func (r *userRepository) UpdateUserTheme(ctx context.Context, id string, theme string) error {
	return r.execOnUser(ctx, "*userRepository.UpdateUserTheme", updateUserTheme, theme, id)
}

// DeleteUser removes the account. Sessions and owned domain rows are removed
// by the ON DELETE CASCADE foreign keys. Returns [ErrNoUserWasFound] when the
// id matches no row.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	return r.execOnUser(ctx, "*userRepository.DeleteUser", deleteUser, id)
}

// execOnUser runs a single-row statement targeting one user and converts a
// zero-rows-affected result into [ErrNoUserWasFound].
func (r *userRepository) execOnUser(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
