package limiters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable indicates the attempt-counter backend is unreachable.
var ErrUnavailable = errors.New("lockout backend unavailable")

// Config tunes the lockout limiter.
type Config struct {
	MaxAttempts     int
	LockoutDuration time.Duration
}

// AttemptRecord is the persisted per-email counter. Count accumulates
// across lockout windows and resets only on a successful login; LockedUntil
// is zero when no lock is in force.
type AttemptRecord struct {
	Count       int   `json:"count"`
	LockedUntil int64 `json:"locked_until,omitempty"`
}

// Status is the outcome of a pre-login lockout check.
type Status struct {
	Allowed    bool
	RetryAfter time.Duration
}

// FailureResult reports the effect of recording one failed attempt.
type FailureResult struct {
	Count     int
	Remaining int
	Locked    bool
}

// LockoutLimiter tracks failed login attempts per normalized email and
// enforces the lockout window. Records are created lazily on first failure
// and persist until explicitly reset.
type LockoutLimiter struct {
	redis  redis.UniversalClient
	key    string
	config Config
	now    func() time.Time
}

// NewLockoutLimiter creates a limiter under the given key prefix. now is
// the clock used for window arithmetic (nil means time.Now).
func NewLockoutLimiter(redisClient redis.UniversalClient, prefix string, cfg Config, now func() time.Time) *LockoutLimiter {
	if now == nil {
		now = time.Now
	}
	return &LockoutLimiter{
		redis:  redisClient,
		key:    prefix + ":login_attempts",
		config: cfg,
		now:    now,
	}
}

// Check reports whether a login attempt for email may proceed. When a
// lockout window is in force the remaining wait is returned; a window that
// has already elapsed no longer blocks.
func (l *LockoutLimiter) Check(ctx context.Context, email string) (Status, error) {
	record, err := l.load(ctx, email)
	if err != nil {
		return Status{}, err
	}

	if record.LockedUntil > 0 {
		if remaining := time.Unix(record.LockedUntil, 0).Sub(l.now()); remaining > 0 {
			return Status{Allowed: false, RetryAfter: remaining}, nil
		}
	}
	return Status{Allowed: true}, nil
}

// RecordFailure increments the failure counter and starts a lockout window
// when the counter reaches the configured maximum. Note the counter is not
// cleared when a window elapses, so the next failure after an expired
// window re-locks immediately; only RecordSuccess clears it.
func (l *LockoutLimiter) RecordFailure(ctx context.Context, email string) (FailureResult, error) {
	record, err := l.load(ctx, email)
	if err != nil {
		return FailureResult{}, err
	}

	record.Count++
	locked := record.Count >= l.config.MaxAttempts
	if locked {
		record.LockedUntil = l.now().Add(l.config.LockoutDuration).Unix()
	} else {
		record.LockedUntil = 0
	}

	if err := l.save(ctx, email, record); err != nil {
		return FailureResult{}, err
	}

	remaining := l.config.MaxAttempts - record.Count
	if remaining < 0 {
		remaining = 0
	}
	return FailureResult{Count: record.Count, Remaining: remaining, Locked: locked}, nil
}

// RecordSuccess resets the counter and any lockout window for email.
func (l *LockoutLimiter) RecordSuccess(ctx context.Context, email string) error {
	return l.save(ctx, email, AttemptRecord{})
}

// Attempts returns the current failure count for email. Missing records
// read as zero.
func (l *LockoutLimiter) Attempts(ctx context.Context, email string) (int, error) {
	record, err := l.load(ctx, email)
	if err != nil {
		return 0, err
	}
	return record.Count, nil
}

func (l *LockoutLimiter) load(ctx context.Context, email string) (AttemptRecord, error) {
	data, err := l.redis.HGet(ctx, l.key, email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return AttemptRecord{}, nil
		}
		return AttemptRecord{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var record AttemptRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// Corrupt counter reads as a fresh record.
		return AttemptRecord{}, nil
	}
	return record, nil
}

func (l *LockoutLimiter) save(ctx context.Context, email string, record AttemptRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := l.redis.HSet(ctx, l.key, email, data).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
