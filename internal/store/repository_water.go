package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

// waterRepository is the SQL-backed implementation of [WaterRepository].
type waterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWaterRepository constructs a [WaterRepository] backed by the provided
// database connection and logger.
func NewWaterRepository(db *DB, logger *logger.Logger) WaterRepository {
	logger.Debug().Msg("creating water repository")
	return &waterRepository{
		db:     db,
		logger: logger,
	}
}

// CreateWaterEntry persists a hydration record, filling a missing ID with a
// fresh UUID.
func (r *waterRepository) CreateWaterEntry(ctx context.Context, e models.WaterEntry) (models.WaterEntry, error) {
	log := logger.FromContext(ctx)

	if e.ID == "" {
		e.ID = utils.NewUUID()
	}

	_, err := r.db.ExecContext(ctx, createWaterEntry, e.ID, e.UserID, e.DrunkAt, e.VolumeML)
	if err != nil {
		log.Err(err).Str("func", "*waterRepository.CreateWaterEntry").Msg("error inserting water entry")
		return models.WaterEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return e, nil
}

// ListWaterEntries returns the user's hydration records within [from, to),
// oldest first.
func (r *waterRepository) ListWaterEntries(ctx context.Context, userID string, from, to time.Time) ([]models.WaterEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.
		Select("id", "user_id", "drunk_at", "volume_ml").
		From("water_entries").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"drunk_at": from}).
		Where(squirrel.Lt{"drunk_at": to}).
		OrderBy("drunk_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*waterRepository.ListWaterEntries").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*waterRepository.ListWaterEntries").Msg("error querying water entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.WaterEntry, 0)
	for rows.Next() {
		var e models.WaterEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.DrunkAt, &e.VolumeML); err != nil {
			log.Err(err).Str("func", "*waterRepository.ListWaterEntries").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// SumWaterVolume returns the total millilitres logged within [from, to).
func (r *waterRepository) SumWaterVolume(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.
		Select("COALESCE(SUM(volume_ml), 0)").
		From("water_entries").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"drunk_at": from}).
		Where(squirrel.Lt{"drunk_at": to}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*waterRepository.SumWaterVolume").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*waterRepository.SumWaterVolume").Msg("error: scanning error")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}

// DeleteWaterEntry removes one record scoped to the owning user. Returns
// [ErrNoWaterEntryWasFound] when no row matches.
func (r *waterRepository) DeleteWaterEntry(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteWaterEntry, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*waterRepository.DeleteWaterEntry").Msg("error deleting water entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoWaterEntryWasFound
	}

	return nil
}
