package redis

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/factoryops/user-admin-api/internal/core/domain"
)

const resetTokenTTL = 24 * time.Hour

// ResetTokenStore holds single-use credential-reset tokens in Redis.
// Key format: reset:<token> → email. Tokens expire after resetTokenTTL and
// are consumed atomically on redeem, so a reset link works exactly once.
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given Redis client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Issue mints a fresh token bound to email.
func (s *ResetTokenStore) Issue(ctx context.Context, email string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(token), email, resetTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// Redeem consumes the token and returns the bound email. GETDEL makes the
// consume atomic: concurrent redeems of the same token cannot both succeed.
func (s *ResetTokenStore) Redeem(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("redeem reset token: %w", err)
	}
	return email, nil
}

func (s *ResetTokenStore) key(token string) string {
	return "reset:" + token
}

// newToken returns 256 bits of entropy, URL-safe for use in a query string.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
