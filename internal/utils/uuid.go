package utils

import "github.com/google/uuid"

// NewUUID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the system clock source is unavailable.
func NewUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
