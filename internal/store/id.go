package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// idLen is the length of a record identifier: 12 random bytes hex-encoded.
const idLen = 24

var randRead = rand.Read

// NewID returns a fresh 24-hex-character record identifier.
func NewID() (string, error) {
	buf := make([]byte, idLen/2)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("NewID: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ValidID reports whether s is structurally a record identifier.
// It says nothing about existence.
func ValidID(s string) bool {
	if len(s) != idLen {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
