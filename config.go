package tickauth

import (
	"errors"
	"fmt"
	"time"
)

// PasswordConfig controls credential hashing and the password policy.
type PasswordConfig struct {
	// Scheme selects the hashing scheme for newly stored credentials:
	// "sha256" (salted SHA-256) or "argon2id". The argon2id verifier
	// also accepts legacy salted-SHA-256 records, so moving from
	// "sha256" to "argon2id" keeps existing credentials working. The
	// reverse is not true: the sha256 verifier rejects argon2id
	// records, so do not switch back once credentials have been
	// stored or upgraded under "argon2id".
	Scheme string

	// MinLength is the minimum password length accepted at registration.
	MinLength int

	// RequireUppercase, RequireLowercase, RequireNumber and
	// RequireSpecial toggle the corresponding character-class rules.
	RequireUppercase bool
	RequireLowercase bool
	RequireNumber    bool
	RequireSpecial   bool

	// UpgradeOnLogin rehashes a legacy salted-SHA-256 credential with
	// the configured scheme after a successful login, when the scheme
	// is stronger than the stored form.
	UpgradeOnLogin bool
}

// SessionConfig controls session issuance and expiry.
type SessionConfig struct {
	// Lifetime is the fixed validity window of an issued session.
	Lifetime time.Duration
}

// LockoutConfig controls per-email login throttling.
type LockoutConfig struct {
	// MaxAttempts is the number of consecutive failures that trips a
	// lockout window.
	MaxAttempts int

	// Duration is the length of the lockout window.
	Duration time.Duration
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int

	// DropIfFull drops events when the buffer is full instead of
	// blocking the calling operation.
	DropIfFull bool
}

// MetricsConfig controls the in-process metric counters.
type MetricsConfig struct {
	Enabled bool
}

// Config is the full engine configuration. Obtain a baseline from
// [DefaultConfig] and override fields before passing it to
// [Builder.WithConfig].
type Config struct {
	// KeyPrefix namespaces every Redis key written by the engine.
	KeyPrefix string

	Password PasswordConfig
	Session  SessionConfig
	Lockout  LockoutConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

// DefaultConfig returns the production baseline configuration.
func DefaultConfig() Config {
	return Config{
		KeyPrefix: "tickhub",
		Password: PasswordConfig{
			Scheme:           "sha256",
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumber:    true,
			RequireSpecial:   true,
			UpgradeOnLogin:   false,
		},
		Session: SessionConfig{
			Lifetime: 24 * time.Hour,
		},
		Lockout: LockoutConfig{
			MaxAttempts: 5,
			Duration:    15 * time.Minute,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate reports the first configuration problem found, or nil.
func (c Config) Validate() error {
	if c.KeyPrefix == "" {
		return errors.New("config: KeyPrefix must not be empty")
	}
	switch c.Password.Scheme {
	case "sha256", "argon2id":
	default:
		return fmt.Errorf("config: unknown password scheme %q", c.Password.Scheme)
	}
	if c.Password.MinLength < 1 {
		return errors.New("config: Password.MinLength must be at least 1")
	}
	if c.Session.Lifetime <= 0 {
		return errors.New("config: Session.Lifetime must be positive")
	}
	if c.Lockout.MaxAttempts < 1 {
		return errors.New("config: Lockout.MaxAttempts must be at least 1")
	}
	if c.Lockout.Duration <= 0 {
		return errors.New("config: Lockout.Duration must be positive")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 1 {
		return errors.New("config: Audit.BufferSize must be at least 1 when audit is enabled")
	}
	return nil
}

// cloneConfig copies a Config so later mutation of the caller's value
// cannot affect a built engine.
func cloneConfig(c Config) Config {
	return c
}
