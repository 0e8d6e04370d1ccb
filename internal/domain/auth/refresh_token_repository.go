package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore keeps hashed refresh tokens between issues and rotations.
type RefreshTokenStore interface {
	Save(ctx context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error
	Lookup(ctx context.Context, tokenHash string) (uuid.UUID, error)
	Delete(ctx context.Context, tokenHash string) error
}

const refreshKeyPrefix = "refresh:"

// RedisRefreshTokenStore stores hashed refresh tokens in Redis with the
// refresh TTL. With a nil client refresh tokens are effectively disabled:
// Save succeeds so login still works, Lookup always fails.
type RedisRefreshTokenStore struct {
	client *redis.Client
}

// NewRedisRefreshTokenStore creates the Redis-backed token store.
func NewRedisRefreshTokenStore(client *redis.Client) *RedisRefreshTokenStore {
	return &RedisRefreshTokenStore{client: client}
}

// Save stores a hashed refresh token.
func (s *RedisRefreshTokenStore) Save(ctx context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}
	return s.client.Set(ctx, refreshKeyPrefix+tokenHash, userID.String(), ttl).Err()
}

// Lookup resolves a hashed refresh token to its user.
func (s *RedisRefreshTokenStore) Lookup(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	if s.client == nil {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	val, err := s.client.Get(ctx, refreshKeyPrefix+tokenHash).Result()
	if err != nil {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	return id, nil
}

// Delete removes a hashed refresh token.
func (s *RedisRefreshTokenStore) Delete(ctx context.Context, tokenHash string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, refreshKeyPrefix+tokenHash).Err()
}
