package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed storage keys, suffixed per session id.
const (
	accessKeyPrefix  = "storefront:session:access:"
	refreshKeyPrefix = "storefront:session:refresh:"
)

// RedisStore keeps the token pair in Redis, for server-side rendering and
// other multi-process deployments where a session must be shared.
type RedisStore struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

// NewRedisStore creates a Redis-backed token store scoped to sessionID.
// Tokens expire after ttl; zero means no expiry.
func NewRedisStore(client *redis.Client, sessionID string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, sessionID: sessionID, ttl: ttl}
}

func (s *RedisStore) AccessToken() string {
	return s.get(accessKeyPrefix + s.sessionID)
}

func (s *RedisStore) RefreshToken() string {
	return s.get(refreshKeyPrefix + s.sessionID)
}

func (s *RedisStore) SetTokens(access, refresh string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Set(ctx, accessKeyPrefix+s.sessionID, access, s.ttl).Err(); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if err := s.client.Set(ctx, refreshKeyPrefix+s.sessionID, refresh, s.ttl).Err(); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Del(ctx, accessKeyPrefix+s.sessionID, refreshKeyPrefix+s.sessionID).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// get reads a key, treating any failure as logged out.
func (s *RedisStore) get(key string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// Unreachable Redis means no session, not a hard failure.
			return ""
		}
		return ""
	}
	return val
}
