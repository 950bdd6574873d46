package workers

import (
	"context"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
)

// sessionPurgeWorker adapts the session purge job to the Worker contract.
type sessionPurgeWorker struct {
	job      service.SessionPurgeJob
	interval time.Duration
}

func newSessionPurgeWorker(sessions service.SessionService, interval time.Duration, log *logger.Logger) Worker {
	return &sessionPurgeWorker{
		job:      service.NewSessionPurgeJob(sessions, log),
		interval: interval,
	}
}

func (w *sessionPurgeWorker) Run() {
	w.job.Start(context.Background(), w.interval)
}

func (w *sessionPurgeWorker) Stop() {
	w.job.Stop()
}
