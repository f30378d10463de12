package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"strings"
)

const saltLength = 32 // bytes of random salt per credential

// Hasher is the credential-scheme contract consumed by the engine.
type Hasher interface {
	// Hash derives a stored credential from a plaintext password.
	Hash(password string) (string, error)
	// Verify reports whether password matches the stored credential.
	// Malformed stored values verify as false, never as an error.
	Verify(password, stored string) bool
	// Dummy returns an unsatisfiable stored credential in this scheme's
	// own format. Verifying against it must cost the same work as
	// verifying against a real credential, so callers can keep login
	// timing uniform when no account exists for the submitted email.
	Dummy() string
}

// Upgrader is implemented by hashers that can recognize stored credentials
// produced with weaker parameters or an older scheme.
type Upgrader interface {
	NeedsUpgrade(stored string) bool
}

// SaltedSHA256 hashes passwords as SHA256(salt || plaintext) with a random
// hex salt, stored as "salt:hash". The derivation is deterministic given the
// same salt, which verification depends on.
type SaltedSHA256 struct{}

// NewSaltedSHA256 returns the storefront's default credential hasher.
func NewSaltedSHA256() SaltedSHA256 {
	return SaltedSHA256{}
}

// Hash derives a "salt:hash" credential with a fresh random salt.
func (SaltedSHA256) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	return hashWithSalt(password, hex.EncodeToString(salt)), nil
}

// HashWithSalt derives the stored form for a known salt. Exposed so callers
// can assert determinism; Verify uses it internally.
func (SaltedSHA256) HashWithSalt(password, salt string) string {
	return hashWithSalt(password, salt)
}

// Verify recomputes the stored form from the salt embedded in stored and
// compares in constant time.
func (SaltedSHA256) Verify(password, stored string) bool {
	salt, _, ok := strings.Cut(stored, ":")
	if !ok || salt == "" {
		return false
	}
	computed := hashWithSalt(password, salt)
	if len(computed) != len(stored) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}

// sha256Dummy is shaped like a real "salt:hash" credential but no password
// satisfies it: the all-zero digest has no known preimage.
const sha256Dummy = "0000000000000000:0000000000000000000000000000000000000000000000000000000000000000"

// Dummy returns a decoy "salt:hash" credential that never verifies.
func (SaltedSHA256) Dummy() string {
	return sha256Dummy
}

func hashWithSalt(password, salt string) string {
	digest := sha256.Sum256([]byte(salt + password))
	return salt + ":" + hex.EncodeToString(digest[:])
}
