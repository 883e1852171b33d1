package ports

import (
	"context"
	"time"
)

// TokenRevoker is the denylist consulted on every authenticated request.
// Logout revokes the presented token for its remaining lifetime; after
// natural expiry the signature check rejects it anyway and the entry can lapse.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
