package store

import (
	"github.com/vitalog/vitalog/internal/logger"
)

// Storages aggregates every repository backed by the shared database handle.
// It is constructed once at process start and threaded into the service
// layer by reference.
type Storages struct {
	Users        UserRepository
	Sessions     SessionRepository
	Measurements MeasurementRepository
	Water        WaterRepository
	Fasts        FastRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Users:        NewUserRepository(db, log),
		Sessions:     NewSessionRepository(db, log),
		Measurements: NewMeasurementRepository(db, log),
		Water:        NewWaterRepository(db, log),
		Fasts:        NewFastRepository(db, log),
	}
}
