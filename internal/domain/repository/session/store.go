package session

import (
	"context"
	"time"
)

// Store tracks revoked access tokens by their jti until natural expiry.
type Store interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
