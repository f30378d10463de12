package tickauth

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tickhub/tickauth/internal/audit"
	"github.com/tickhub/tickauth/internal/limiters"
	internalmetrics "github.com/tickhub/tickauth/internal/metrics"
	"github.com/tickhub/tickauth/internal/stores"
	"github.com/tickhub/tickauth/password"
	"github.com/tickhub/tickauth/session"
	"github.com/tickhub/tickauth/validate"
)

// Builder assembles an [Engine] from a configuration and its external
// dependencies. A Builder is single-use: Build consumes it.
//
// Builder instances are intended to be configured during initialization and
// then discarded; they are not safe for concurrent use.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	auditSink AuditSink
	hasher    password.Hasher
	clock     func() time.Time

	built bool
}

// New returns a Builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the builder's configuration. The value is copied;
// later mutation of cfg does not affect the builder.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis sets the Redis client backing all persistence: accounts,
// sessions and lockout records. Required.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithAuditSink sets the sink that receives audit events. Ignored unless
// Audit.Enabled is set in the configuration.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithHasher overrides the password hasher selected by Password.Scheme.
// Intended for instrumented hashers in tests; production callers should
// configure a scheme instead.
func (b *Builder) WithHasher(h password.Hasher) *Builder {
	b.hasher = h
	return b
}

// WithClock overrides the engine's time source. Intended for simulated
// time in tests; nil restores the wall clock.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.clock = now
	return b
}

// WithMetricsEnabled toggles the in-process metric counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, wires every component and returns a
// ready Engine. Build fails on a reused builder, a missing Redis client,
// or an invalid configuration.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if b.redis == nil {
		return nil, errors.New("redis client required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := b.clock
	if now == nil {
		now = time.Now
	}

	hasher := b.hasher
	if hasher == nil {
		switch cfg.Password.Scheme {
		case "argon2id":
			h, err := password.NewArgon2(password.DefaultArgon2Params())
			if err != nil {
				return nil, err
			}
			hasher = h
		default:
			hasher = password.NewSaltedSHA256()
		}
	}

	engine := &Engine{
		config: cfg,
		now:    now,
		hasher: hasher,
		policy: validate.Policy{
			MinLength:        cfg.Password.MinLength,
			RequireUppercase: cfg.Password.RequireUppercase,
			RequireLowercase: cfg.Password.RequireLowercase,
			RequireNumber:    cfg.Password.RequireNumber,
			RequireSpecial:   cfg.Password.RequireSpecial,
		},
		accounts: stores.NewAccountStore(b.redis, cfg.KeyPrefix),
		sessions: session.NewStore(b.redis, cfg.KeyPrefix, now),
		limiter: limiters.NewLockoutLimiter(b.redis, cfg.KeyPrefix, limiters.Config{
			MaxAttempts:     cfg.Lockout.MaxAttempts,
			LockoutDuration: cfg.Lockout.Duration,
		}, now),
		audit: audit.NewDispatcher(audit.Config{
			Enabled:    cfg.Audit.Enabled,
			BufferSize: cfg.Audit.BufferSize,
			DropIfFull: cfg.Audit.DropIfFull,
		}, b.auditSink),
		metrics: internalmetrics.New(internalmetrics.Config{
			Enabled: cfg.Metrics.Enabled,
		}),
	}

	b.built = true

	return engine, nil
}
