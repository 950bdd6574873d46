package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the entropy of a session token. 32 random bytes give
// a 64-character hex string; guessing one is computationally infeasible.
const sessionTokenBytes = 32

// NewSessionToken mints an opaque high-entropy session identifier.
//
// Every call reads fresh bytes from crypto/rand, so a token value is never
// reused across distinct sessions.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
