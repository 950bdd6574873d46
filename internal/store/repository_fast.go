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

// fastRepository is the SQL-backed implementation of [FastRepository].
// The "one open fast per user" rule is enforced by a partial unique index,
// so a racing second start surfaces as a unique violation here.
type fastRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFastRepository constructs a [FastRepository] backed by the provided
// database connection and logger.
func NewFastRepository(db *DB, logger *logger.Logger) FastRepository {
	logger.Debug().Msg("creating fast repository")
	return &fastRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFast persists a new fasting window, filling a missing ID with a
// fresh UUID.
//
// Error handling:
//   - UNIQUE violation on the open-fast index → [ErrOpenFastExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *fastRepository) CreateFast(ctx context.Context, f models.Fast) (models.Fast, error) {
	log := logger.FromContext(ctx)

	if f.ID == "" {
		f.ID = utils.NewUUID()
	}

	_, err := r.db.ExecContext(ctx, createFast, f.ID, f.UserID, f.StartedAt, f.EndedAt, f.TargetHours)
	if err != nil {
		log.Err(err).Str("func", "*fastRepository.CreateFast").Msg("error inserting fast")

		if r.db.classifier.IsUniqueViolation(err) {
			return models.Fast{}, ErrOpenFastExists
		}
		return models.Fast{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return f, nil
}

// FindOpenFast returns the user's current unfinished fast, or
// [ErrNoFastWasFound] when none is open.
func (r *fastRepository) FindOpenFast(ctx context.Context, userID string) (models.Fast, error) {
	log := logger.FromContext(ctx)

	var f models.Fast
	row := r.db.QueryRowContext(ctx, findOpenFast, userID)

	if err := row.Scan(&f.ID, &f.UserID, &f.StartedAt, &f.EndedAt, &f.TargetHours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Fast{}, ErrNoFastWasFound
		}

		log.Err(err).Str("func", "*fastRepository.FindOpenFast").Msg("error: scanning error")
		return models.Fast{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return f, nil
}

// FinishFast closes an open fasting window in a single atomic update.
// Returns [ErrNoFastWasFound] when the fast does not exist, belongs to
// another user, or is already finished.
func (r *fastRepository) FinishFast(ctx context.Context, userID, id string, endedAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, finishFast, endedAt, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*fastRepository.FinishFast").Msg("error finishing fast")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoFastWasFound
	}

	return nil
}

// ListFasts returns the user's fasting history, newest first.
func (r *fastRepository) ListFasts(ctx context.Context, userID string) ([]models.Fast, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFasts, userID)
	if err != nil {
		log.Err(err).Str("func", "*fastRepository.ListFasts").Msg("error querying fasts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	fasts := make([]models.Fast, 0)
	for rows.Next() {
		var f models.Fast
		if err := rows.Scan(&f.ID, &f.UserID, &f.StartedAt, &f.EndedAt, &f.TargetHours); err != nil {
			log.Err(err).Str("func", "*fastRepository.ListFasts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		fasts = append(fasts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return fasts, nil
}

// DeleteFast removes one fasting window scoped to the owning user. Returns
// [ErrNoFastWasFound] when no row matches.
func (r *fastRepository) DeleteFast(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFast, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*fastRepository.DeleteFast").Msg("error deleting fast")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoFastWasFound
	}

	return nil
}
