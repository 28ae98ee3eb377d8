package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps one session record per admin user in Redis. The
// record's TTL matches the token lifetime, so an expired session disappears
// on its own.
type RedisSessionStore struct {
	client *redis.Client
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a session store backed by the given client
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(userID uuid.UUID) string {
	return "session:" + userID.String()
}

func (s *RedisSessionStore) Create(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(userID), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}
