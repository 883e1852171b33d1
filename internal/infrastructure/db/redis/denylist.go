package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records logged-out tokens until their natural expiry.
// Key format: revoked:<sha256(token)> — the raw token never reaches Redis.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marks the token as logged out for ttl, after which the signature
// expiry check rejects it anyway and the entry can lapse.
func (d *TokenDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been logged out.
func (d *TokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}
