package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

// measurementService is the concrete implementation of MeasurementService.
type measurementService struct {
	measurementRepository store.MeasurementRepository
}

// NewMeasurementService constructs a MeasurementService backed by the given
// repository.
func NewMeasurementService(measurementRepository store.MeasurementRepository, logger *logger.Logger) MeasurementService {
	logger.Debug().Msg("creating measurement service")
	return &measurementService{
		measurementRepository: measurementRepository,
	}
}

// CreateMeasurement validates and stores a diary entry for the user. The
// UserID on the entry is always taken from the authenticated caller, never
// from the payload.
func (m *measurementService) CreateMeasurement(ctx context.Context, userID string, entry models.Measurement) (models.Measurement, error) {
	log := logger.FromContext(ctx)

	if entry.WeightKG <= 0 {
		return models.Measurement{}, ErrInvalidDataProvided
	}
	if entry.BodyFatPct != nil && (*entry.BodyFatPct < 0 || *entry.BodyFatPct > 100) {
		return models.Measurement{}, ErrInvalidDataProvided
	}
	if entry.WaistCM != nil && *entry.WaistCM <= 0 {
		return models.Measurement{}, ErrInvalidDataProvided
	}

	entry.UserID = userID
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	created, err := m.measurementRepository.CreateMeasurement(ctx, entry)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("measurement creation ended with error")
		return models.Measurement{}, fmt.Errorf("measurement creation ended with error: %w", err)
	}

	return created, nil
}

// GetMeasurement retrieves one of the user's entries.
func (m *measurementService) GetMeasurement(ctx context.Context, userID, id string) (models.Measurement, error) {
	entry, err := m.measurementRepository.FindMeasurement(ctx, userID, id)
	if err != nil {
		return models.Measurement{}, fmt.Errorf("measurement lookup failed: %w", err)
	}

	return entry, nil
}

// ListMeasurements returns the user's entries, optionally filtered by date
// range, newest first.
func (m *measurementService) ListMeasurements(ctx context.Context, userID string, filter models.MeasurementFilter) ([]models.Measurement, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, ErrInvalidDataProvided
	}

	entries, err := m.measurementRepository.ListMeasurements(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("measurement listing failed: %w", err)
	}

	return entries, nil
}

// DeleteMeasurement removes one of the user's entries.
func (m *measurementService) DeleteMeasurement(ctx context.Context, userID, id string) error {
	if err := m.measurementRepository.DeleteMeasurement(ctx, userID, id); err != nil {
		return fmt.Errorf("measurement deletion failed: %w", err)
	}

	return nil
}
