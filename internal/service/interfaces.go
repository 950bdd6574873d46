package service

import (
	"context"
	"time"

	"github.com/vitalog/vitalog/models"
)

// AuthService covers credential-based account operations: registration,
// login verification, and the profile mutations a signed-in user may apply
// to their own account.
type AuthService interface {
	Register(ctx context.Context, email, password, confirmPassword string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	UpdateTheme(ctx context.Context, userID, theme string) error
	EnsureBootstrapAdmin(ctx context.Context) error
}

// SessionService owns the session lifecycle: minting tokens at login,
// validating and renewing them on every request, and revoking them on
// logout or administrative action.
type SessionService interface {
	CreateSession(ctx context.Context, userID string) (models.Session, error)
	ValidateSession(ctx context.Context, token string) (models.Principal, error)
	InvalidateSession(ctx context.Context, token string) error
	InvalidateAllSessions(ctx context.Context, userID string) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// AuthzService decides whether an authenticated principal may perform a
// role-gated action. Roles are always re-read from the user store so that
// a demotion takes effect on the next request, not the next login.
type AuthzService interface {
	RequireRole(ctx context.Context, principal models.Principal, role models.Role) (models.User, error)
	RequireAdmin(ctx context.Context, principal models.Principal) (models.User, error)
}

// AdminService covers the back-office user management operations. Every
// method assumes the caller has already passed the admin authorization gate.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, email, password string, role models.Role) (models.User, error)
	UpdateUserRole(ctx context.Context, actorID, targetID string, role models.Role) error
	ResetUserPassword(ctx context.Context, targetID, newPassword string) error
	DeleteUser(ctx context.Context, actorID, targetID string) error
}

// MeasurementService manages a user's body-measurement diary.
type MeasurementService interface {
	CreateMeasurement(ctx context.Context, userID string, m models.Measurement) (models.Measurement, error)
	GetMeasurement(ctx context.Context, userID, id string) (models.Measurement, error)
	ListMeasurements(ctx context.Context, userID string, filter models.MeasurementFilter) ([]models.Measurement, error)
	DeleteMeasurement(ctx context.Context, userID, id string) error
}

// WaterService manages a user's hydration log.
type WaterService interface {
	CreateWaterEntry(ctx context.Context, userID string, e models.WaterEntry) (models.WaterEntry, error)
	ListWaterEntries(ctx context.Context, userID string, from, to time.Time) ([]models.WaterEntry, error)
	WaterTotal(ctx context.Context, userID string, from, to time.Time) (int64, error)
	DeleteWaterEntry(ctx context.Context, userID, id string) error
}

// FastService manages a user's intermittent-fasting windows. At most one
// fast may be open per user at any time.
type FastService interface {
	StartFast(ctx context.Context, userID string, targetHours int) (models.Fast, error)
	CurrentFast(ctx context.Context, userID string) (models.Fast, error)
	FinishFast(ctx context.Context, userID, id string) error
	ListFasts(ctx context.Context, userID string) ([]models.Fast, error)
	DeleteFast(ctx context.Context, userID, id string) error
}

// SessionPurgeJob periodically sweeps expired session rows. The job is idle
// until Start is called.
type SessionPurgeJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
