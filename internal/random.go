package internal

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const (
	accountIDSize    = 8
	orderIDSize      = 6
	sessionTokenSize = 32
)

// RandomHex returns byteLength cryptographically secure random bytes,
// hex-encoded. It never falls back to a statistically seeded source.
func RandomHex(byteLength int) (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// NewAccountID returns an opaque account identifier.
func NewAccountID() (string, error) {
	return RandomHex(accountIDSize)
}

// NewOrderID returns a short upper-cased order identifier suitable for
// display on receipts.
func NewOrderID() (string, error) {
	id, err := RandomHex(orderIDSize)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(id), nil
}

// NewSessionToken returns a session token with at least 128 bits of entropy.
func NewSessionToken() (string, error) {
	return RandomHex(sessionTokenSize)
}
