// Package adapter provides the HTTP client used by vitactl to talk to a
// running vitalog server's admin API.
package adapter

import (
	"context"

	"github.com/vitalog/vitalog/models"
)

// AdminClient is the remote-server contract used by the vitactl command.
// All calls except Login require a prior successful Login, which captures
// the session cookie for subsequent requests.
type AdminClient interface {
	// Login authenticates with the server and stores the session cookie.
	Login(ctx context.Context, email, password string) error

	// Logout revokes the current session on the server.
	Logout(ctx context.Context) error

	// ListUsers returns all user accounts.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUser provisions an account with an explicit role.
	CreateUser(ctx context.Context, email, password string, role models.Role) (models.User, error)

	// SetUserRole changes the role of the target account.
	SetUserRole(ctx context.Context, userID string, role models.Role) error

	// ResetUserPassword replaces the target account's password and revokes
	// its sessions.
	ResetUserPassword(ctx context.Context, userID, password string) error

	// DeleteUser removes the target account and everything it owns.
	DeleteUser(ctx context.Context, userID string) error
}
