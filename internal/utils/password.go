package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by HashPassword when the plaintext is empty.
// An empty credential must never reach the hasher.
var ErrEmptyPassword = errors.New("empty password provided")

// HashPassword derives a salted one-way bcrypt hash of the given plaintext.
//
// bcrypt generates a unique salt on every call, so hashing the same password
// twice yields two different hash strings that both verify against it.
//
// Returns ErrEmptyPassword for an empty input and a wrapped bcrypt error for
// malformed input (e.g. plaintext longer than the 72-byte bcrypt limit).
// A "wrong password" is never an error — that is VerifyPassword's false.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
// The comparison time does not depend on where a mismatch occurs.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
