package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable indicates the session backend is unreachable.
var ErrUnavailable = errors.New("session backend unavailable")

// ErrExpired is returned by Current when it finds a session past its
// deadline. The record has already been destroyed by the time Current
// returns; callers that only care about presence can treat ErrExpired
// as an absent session.
var ErrExpired = errors.New("session expired")

// Store persists the single active session in Redis under one key.
// Records are written by full-value replacement; there are no partial
// updates.
type Store struct {
	redis redis.UniversalClient
	key   string
	now   func() time.Time
}

// NewStore creates a session store. The key is derived from prefix; now is
// the clock used for expiry checks (nil means time.Now).
func NewStore(redisClient redis.UniversalClient, prefix string, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		redis: redisClient,
		key:   prefix + ":session",
		now:   now,
	}
}

// Save persists sess as the sole active session, overwriting any prior one.
// The Redis TTL mirrors the expiry deadline as a backstop; validity is
// decided by the stored deadline, not the TTL.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	ttl := time.Unix(sess.ExpiresAt, 0).Sub(s.now())
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	if err := s.redis.Set(ctx, s.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Current loads the active session. Absent sessions return (nil, nil). An
// expired session is deleted as a side effect and returns (nil, ErrExpired)
// so the caller can observe the lazy eviction. A corrupt record is deleted
// and reads as absent.
func (s *Store) Current(ctx context.Context) (*Session, error) {
	data, err := s.redis.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupt record: availability over strict consistency.
		if err := s.Destroy(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if !sess.Valid(s.now()) {
		if err := s.Destroy(ctx); err != nil {
			return nil, err
		}
		return nil, ErrExpired
	}

	return &sess, nil
}

// Destroy deletes the persisted session unconditionally. Deleting an absent
// session is not an error.
func (s *Store) Destroy(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
