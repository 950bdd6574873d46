package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// email from a wrong password.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrWeakPassword        = errors.New("password must be at least 8 characters")

	ErrSessionExpiredOrInvalid = errors.New("session is expired or invalid")

	ErrInsufficientRole = errors.New("insufficient role")
	ErrUnknownRole      = errors.New("unknown role")
	ErrSelfRoleChange   = errors.New("admins cannot change their own role")
	ErrSelfDeletion     = errors.New("admins cannot delete their own account")
)
