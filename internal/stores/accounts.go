package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable indicates the account backend is unreachable.
var ErrUnavailable = errors.New("account backend unavailable")

// AccountStore maps case-folded email to Account records inside one Redis
// hash. The hash field is replaced wholesale on every write.
type AccountStore struct {
	redis redis.UniversalClient
	key   string
}

// NewAccountStore creates an account store under the given key prefix.
func NewAccountStore(redisClient redis.UniversalClient, prefix string) *AccountStore {
	return &AccountStore{
		redis: redisClient,
		key:   prefix + ":users",
	}
}

// Get loads the account for email. Missing and corrupt records both return
// (nil, nil); existence must never be inferred from a different error shape.
func (s *AccountStore) Get(ctx context.Context, email string) (*Account, error) {
	data, err := s.redis.HGet(ctx, s.key, email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var account Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, nil
	}
	return &account, nil
}

// Put writes the account record, replacing any existing record for the same
// email.
func (s *AccountStore) Put(ctx context.Context, account *Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	if err := s.redis.HSet(ctx, s.key, account.Email, data).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
