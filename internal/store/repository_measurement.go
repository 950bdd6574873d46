package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

// measurementRepository is the SQL-backed implementation of
// [MeasurementRepository]. The date-range listing is built dynamically with
// squirrel; everything else uses fixed statements.
type measurementRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMeasurementRepository constructs a [MeasurementRepository] backed by
// the provided database connection and logger.
func NewMeasurementRepository(db *DB, logger *logger.Logger) MeasurementRepository {
	logger.Debug().Msg("creating measurement repository")
	return &measurementRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMeasurement persists a new diary entry, filling a missing ID with a
// fresh UUID.
func (r *measurementRepository) CreateMeasurement(ctx context.Context, m models.Measurement) (models.Measurement, error) {
	log := logger.FromContext(ctx)

	if m.ID == "" {
		m.ID = utils.NewUUID()
	}

	_, err := r.db.ExecContext(ctx, createMeasurement,
		m.ID, m.UserID, m.RecordedAt, m.WeightKG, m.BodyFatPct, m.WaistCM, m.Note)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.CreateMeasurement").Msg("error inserting measurement")
		return models.Measurement{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return m, nil
}

// FindMeasurement retrieves one entry scoped to the owning user. Returns
// [ErrNoMeasurementWasFound] when no row matches.
func (r *measurementRepository) FindMeasurement(ctx context.Context, userID, id string) (models.Measurement, error) {
	log := logger.FromContext(ctx)

	var m models.Measurement
	row := r.db.QueryRowContext(ctx, findMeasurement, userID, id)

	if err := row.Scan(&m.ID, &m.UserID, &m.RecordedAt, &m.WeightKG, &m.BodyFatPct, &m.WaistCM, &m.Note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Measurement{}, ErrNoMeasurementWasFound
		}

		log.Err(err).Str("func", "*measurementRepository.FindMeasurement").Msg("error: scanning error")
		return models.Measurement{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return m, nil
}

// ListMeasurements returns the user's entries newest-first, optionally
// narrowed to a date range.
func (r *measurementRepository) ListMeasurements(ctx context.Context, userID string, filter models.MeasurementFilter) ([]models.Measurement, error) {
	log := logger.FromContext(ctx)

	qb := squirrel.
		Select("id", "user_id", "recorded_at", "weight_kg", "body_fat_pct", "waist_cm", "note").
		From("measurements").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("recorded_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.From != nil {
		qb = qb.Where(squirrel.GtOrEq{"recorded_at": *filter.From})
	}
	if filter.To != nil {
		qb = qb.Where(squirrel.LtOrEq{"recorded_at": *filter.To})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.ListMeasurements").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.ListMeasurements").Msg("error querying measurements")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	measurements := make([]models.Measurement, 0)
	for rows.Next() {
		var m models.Measurement
		if err := rows.Scan(&m.ID, &m.UserID, &m.RecordedAt, &m.WeightKG, &m.BodyFatPct, &m.WaistCM, &m.Note); err != nil {
			log.Err(err).Str("func", "*measurementRepository.ListMeasurements").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return measurements, nil
}

// DeleteMeasurement removes one entry scoped to the owning user. Returns
// [ErrNoMeasurementWasFound] when no row matches.
func (r *measurementRepository) DeleteMeasurement(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMeasurement, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.DeleteMeasurement").Msg("error deleting measurement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoMeasurementWasFound
	}

	return nil
}
