package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"inkwell/internal/infrastructure/broker"
)

const revokedKeyPrefix = "revoked:"

type Config struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

// Store keeps revoked token IDs in Redis, sharing the broker's connection.
// Entries expire together with the tokens they shadow, so the set stays small.
type Store struct {
	redis   *redis.Client
	timeout time.Duration
}

func NewStore(client *broker.Client, cfg Config) *Store {
	return &Store{
		redis:   client.Redis(),
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (s *Store) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if ttl <= 0 {
		// Already expired; nothing to track.
		return nil
	}

	return s.redis.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *Store) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.redis.Get(ctx, revokedKeyPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
