// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSnapshotCorrupt marks a persisted cart snapshot that no longer parses.
// There is no version field and no migration path; callers start over with
// an empty cart.
var ErrSnapshotCorrupt = errors.New("cart snapshot corrupt")

// Store persists full cart snapshots keyed by session id. Writes replace
// the whole snapshot; concurrent sessions race with last-write-wins
// semantics and no conflict detection.
type Store interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, c Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps cart snapshots in Redis as JSON line-item arrays with a
// sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed cart store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load retrieves the snapshot for a session. A missing key is an empty
// cart, not an error.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return Cart{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	return c, nil
}

// Save replaces the snapshot for a session and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// Delete removes the snapshot for a session.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}
