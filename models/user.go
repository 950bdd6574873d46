package models

import "time"

// Role is the coarse authorization label attached to every user account.
// It controls access to the privileged admin surface.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"

	// RoleAdmin grants access to the back-office user-management endpoints.
	// Only an existing admin (or the bootstrap operation) may assign it.
	RoleAdmin Role = "admin"
)

// DefaultTheme is the UI theme assigned to new accounts.
const DefaultTheme = "light"

// Valid reports whether r is one of the two enumerated roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Satisfies reports whether r grants at least the privileges of required.
// Admins satisfy every role; regular users satisfy only RoleUser.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdmin {
		return required.Valid()
	}

	return r == required
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user (UUID).
	UserID string `json:"user_id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash stores the salted one-way hash of the user's password.
	// This value MUST be a bcrypt hash, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is the authorization label of the account. Authorization checks
	// must always re-read this value from the store, never trust a copy
	// carried in a long-lived principal.
	Role Role `json:"role"`

	// Theme is the UI theme preference of the user. Non-sensitive.
	Theme string `json:"theme"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
