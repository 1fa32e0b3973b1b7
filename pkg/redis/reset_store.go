package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrResetTokenNotFound is returned for unknown or expired reset tokens.
var ErrResetTokenNotFound = errors.New("reset token not found")

// ResetTokenStore holds one-time password reset tokens. Each token maps
// to the account it was issued for and disappears when redeemed or when
// its TTL runs out.
type ResetTokenStore struct{}

var (
	setResetValue = Set
	getResetValue = Get
	delResetValue = Del
)

// NewResetTokenStore creates a new reset token store
func NewResetTokenStore() *ResetTokenStore {
	return &ResetTokenStore{}
}

// Put stores a token for the given account
func (s *ResetTokenStore) Put(ctx context.Context, token, userID string, expiration time.Duration) error {
	return setResetValue(ctx, "pwreset:"+token, userID, expiration)
}

// Get resolves a token to the account it was issued for
func (s *ResetTokenStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := getResetValue(ctx, "pwreset:"+token)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", ErrResetTokenNotFound
		}
		return "", err
	}
	return userID, nil
}

// Delete burns a token so it cannot be redeemed twice
func (s *ResetTokenStore) Delete(ctx context.Context, token string) error {
	return delResetValue(ctx, "pwreset:"+token)
}
