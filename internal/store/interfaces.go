package store

import (
	"context"
	"time"

	"github.com/vitalog/vitalog/models"
)

// UserRepository is the credential store contract: persisted user records
// with identity, salted password hash, and role.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, id string, role models.Role) error
	UpdateUserPassword(ctx context.Context, id string, passwordHash string) error
	UpdateUserTheme(ctx context.Context, id string, theme string) error
	DeleteUser(ctx context.Context, id string) error
}

// SessionRepository persists proof-of-login records. All writes are
// single-row and atomic; deletion of an absent row is not an error.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, token string) (models.Session, error)
	UpdateSessionExpiry(ctx context.Context, token string, expiresAt time.Time) error
	DeleteSession(ctx context.Context, token string) error
	DeleteSessionsForUser(ctx context.Context, userID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// MeasurementRepository stores body-measurement diary entries, always scoped
// to the owning user.
type MeasurementRepository interface {
	CreateMeasurement(ctx context.Context, m models.Measurement) (models.Measurement, error)
	FindMeasurement(ctx context.Context, userID, id string) (models.Measurement, error)
	ListMeasurements(ctx context.Context, userID string, filter models.MeasurementFilter) ([]models.Measurement, error)
	DeleteMeasurement(ctx context.Context, userID, id string) error
}

// WaterRepository stores hydration log entries, scoped to the owning user.
type WaterRepository interface {
	CreateWaterEntry(ctx context.Context, e models.WaterEntry) (models.WaterEntry, error)
	ListWaterEntries(ctx context.Context, userID string, from, to time.Time) ([]models.WaterEntry, error)
	SumWaterVolume(ctx context.Context, userID string, from, to time.Time) (int64, error)
	DeleteWaterEntry(ctx context.Context, userID, id string) error
}

// FastRepository stores intermittent-fasting windows, scoped to the owning
// user. At most one open fast may exist per user.
type FastRepository interface {
	CreateFast(ctx context.Context, f models.Fast) (models.Fast, error)
	FindOpenFast(ctx context.Context, userID string) (models.Fast, error)
	FinishFast(ctx context.Context, userID, id string, endedAt time.Time) error
	ListFasts(ctx context.Context, userID string) ([]models.Fast, error)
	DeleteFast(ctx context.Context, userID, id string) error
}
