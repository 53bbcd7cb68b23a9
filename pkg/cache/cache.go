package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs per cached concern
const (
	TTLSettings = 30 * time.Second // score thresholds, read on every listing
	TTLSession  = 5 * time.Minute  // session rows, DB remains source of truth
	TTLDefault  = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixSettings = "settings:"
	PrefixSession  = "session:"
)

// ErrMiss is returned when a key is absent
var ErrMiss = errors.New("cache: miss")

// Service is the Redis-backed cache used by the settings store and
// session resolution. All methods are safe to call with a nil *Service;
// they behave as a permanent miss so the app runs without Redis.
type Service struct {
	client *redis.Client
}

// NewService creates a cache service on top of an established Redis client
func NewService(client *redis.Client) *Service {
	return &Service{client: client}
}

// Get unmarshals the cached value at key into dest
func (s *Service) Get(ctx context.Context, key string, dest interface{}) error {
	if s == nil || s.client == nil {
		return ErrMiss
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set marshals value and stores it at key with the given TTL
func (s *Service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s == nil || s.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes the given keys
func (s *Service) Delete(ctx context.Context, keys ...string) error {
	if s == nil || s.client == nil || len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
