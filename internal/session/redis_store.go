package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps identities in a Redis hash per session
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a store whose entries expire ttl after the last save
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(id string) string {
	return "session:" + id
}

// Load implements Store
func (s *RedisStore) Load(ctx context.Context, id string) (*Identity, error) {
	fields, err := s.client.HGetAll(ctx, key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return identityFromFields(fields), nil
}

// Save implements Store
func (s *RedisStore) Save(ctx context.Context, id string, identity Identity) error {
	if identity.UserID == "" {
		return ErrInvalidIdentity
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key(id), KeyUserID, identity.UserID, KeyUsername, identity.Username)
	if s.ttl > 0 {
		pipe.Expire(ctx, key(id), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear implements Store
func (s *RedisStore) Clear(ctx context.Context, id string) error {
	if err := s.client.HDel(ctx, key(id), KeyUserID, KeyUsername).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
