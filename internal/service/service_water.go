package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

// maxWaterVolumeML caps a single hydration record; anything above is almost
// certainly a unit mistake (litres entered as millilitres times a thousand).
const maxWaterVolumeML = 5000

// waterService is the concrete implementation of WaterService.
type waterService struct {
	waterRepository store.WaterRepository
}

// NewWaterService constructs a WaterService backed by the given repository.
func NewWaterService(waterRepository store.WaterRepository, logger *logger.Logger) WaterService {
	logger.Debug().Msg("creating water service")
	return &waterService{
		waterRepository: waterRepository,
	}
}

// CreateWaterEntry validates and stores a hydration record for the user.
func (w *waterService) CreateWaterEntry(ctx context.Context, userID string, entry models.WaterEntry) (models.WaterEntry, error) {
	log := logger.FromContext(ctx)

	if entry.VolumeML <= 0 || entry.VolumeML > maxWaterVolumeML {
		return models.WaterEntry{}, ErrInvalidDataProvided
	}

	entry.UserID = userID
	if entry.DrunkAt.IsZero() {
		entry.DrunkAt = time.Now().UTC()
	}

	created, err := w.waterRepository.CreateWaterEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("water entry creation ended with error")
		return models.WaterEntry{}, fmt.Errorf("water entry creation ended with error: %w", err)
	}

	return created, nil
}

// ListWaterEntries returns the user's records within [from, to).
func (w *waterService) ListWaterEntries(ctx context.Context, userID string, from, to time.Time) ([]models.WaterEntry, error) {
	if to.Before(from) {
		return nil, ErrInvalidDataProvided
	}

	entries, err := w.waterRepository.ListWaterEntries(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("water entry listing failed: %w", err)
	}

	return entries, nil
}

// WaterTotal returns the total millilitres logged within [from, to).
func (w *waterService) WaterTotal(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	if to.Before(from) {
		return 0, ErrInvalidDataProvided
	}

	total, err := w.waterRepository.SumWaterVolume(ctx, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("water total computation failed: %w", err)
	}

	return total, nil
}

// DeleteWaterEntry removes one of the user's records.
func (w *waterService) DeleteWaterEntry(ctx context.Context, userID, id string) error {
	if err := w.waterRepository.DeleteWaterEntry(ctx, userID, id); err != nil {
		return fmt.Errorf("water entry deletion failed: %w", err)
	}

	return nil
}
