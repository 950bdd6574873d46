package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/models"
)

// maxFastTargetHours bounds the configurable fasting goal.
const maxFastTargetHours = 168

// fastService is the concrete implementation of FastService.
//
// The "one open fast per user" invariant is enforced in the database by a
// partial unique index rather than by a check-then-insert here, so two
// concurrent starts cannot both succeed.
type fastService struct {
	fastRepository store.FastRepository

	// now is the clock, injectable for tests.
	now func() time.Time
}

// NewFastService constructs a FastService backed by the given repository.
func NewFastService(fastRepository store.FastRepository, logger *logger.Logger) FastService {
	logger.Debug().Msg("creating fast service")
	return &fastService{
		fastRepository: fastRepository,
		now:            time.Now,
	}
}

// StartFast opens a new fasting window for the user.
//
// Returns the created fast or:
//   - ErrInvalidDataProvided if targetHours is out of range.
//   - store.ErrOpenFastExists if the user already has an open fast.
func (f *fastService) StartFast(ctx context.Context, userID string, targetHours int) (models.Fast, error) {
	log := logger.FromContext(ctx)

	if targetHours <= 0 || targetHours > maxFastTargetHours {
		return models.Fast{}, ErrInvalidDataProvided
	}

	created, err := f.fastRepository.CreateFast(ctx, models.Fast{
		UserID:      userID,
		StartedAt:   f.now().UTC(),
		TargetHours: targetHours,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("fast creation ended with error")
		return models.Fast{}, fmt.Errorf("fast creation ended with error: %w", err)
	}

	return created, nil
}

// CurrentFast returns the user's open fast, or store.ErrNoFastWasFound when
// none is in progress.
func (f *fastService) CurrentFast(ctx context.Context, userID string) (models.Fast, error) {
	fast, err := f.fastRepository.FindOpenFast(ctx, userID)
	if err != nil {
		return models.Fast{}, fmt.Errorf("open fast lookup failed: %w", err)
	}

	return fast, nil
}

// FinishFast closes the user's open fast. The update is atomic in the store,
// so finishing an already-finished fast yields store.ErrNoFastWasFound.
func (f *fastService) FinishFast(ctx context.Context, userID, id string) error {
	if err := f.fastRepository.FinishFast(ctx, userID, id, f.now().UTC()); err != nil {
		return fmt.Errorf("fast completion failed: %w", err)
	}

	return nil
}

// ListFasts returns the user's fasting history, newest first.
func (f *fastService) ListFasts(ctx context.Context, userID string) ([]models.Fast, error) {
	fasts, err := f.fastRepository.ListFasts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fast listing failed: %w", err)
	}

	return fasts, nil
}

// DeleteFast removes one fasting window from the user's history.
func (f *fastService) DeleteFast(ctx context.Context, userID, id string) error {
	if err := f.fastRepository.DeleteFast(ctx, userID, id); err != nil {
		return fmt.Errorf("fast deletion failed: %w", err)
	}

	return nil
}
