package service

import (
	"context"
	"sync"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
)

type sessionPurgeJob struct {
	sessionService SessionService
	logger         *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionPurgeJob creates a sessionPurgeJob that sweeps expired sessions
// on a ticker. The job is idle until Start is called.
func NewSessionPurgeJob(sessionService SessionService, logger *logger.Logger) SessionPurgeJob {
	return &sessionPurgeJob{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Start implements SessionPurgeJob. It stops any previously running job,
// then launches a background goroutine that purges expired sessions every
// interval. If interval is zero or negative it defaults to one hour. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *sessionPurgeJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				purged, err := j.sessionService.PurgeExpiredSessions(jobCtx)
				if err != nil {
					j.logger.Err(err).Msg("session purge sweep failed")
					continue
				}
				if purged > 0 {
					j.logger.Info().Int64("purged", purged).Msg("expired sessions purged")
				}
			}
		}
	}()
}

// Stop implements SessionPurgeJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *sessionPurgeJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
