package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSnapshotStore keeps JSON-encoded catalog snapshots in Redis so that
// several service instances share one catalog load.
type RedisSnapshotStore struct {
	client redis.UniversalClient
}

func NewRedisSnapshotStore(client redis.UniversalClient) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

// Get returns the snapshot stored under key. A missing key is not an error.
func (s *RedisSnapshotStore) Get(
	ctx context.Context,
	key string,
) (_ domain.CatalogSnapshot, _ bool, err error) {
	defer obs.Time(ctx, "catalog.redis.Get")(&err)

	if s.client == nil {
		return domain.CatalogSnapshot{}, false, errors.New("redis snapshot store: client is nil")
	}

	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.CatalogSnapshot{}, false, nil
	}
	if err != nil {
		return domain.CatalogSnapshot{}, false, fmt.Errorf("get snapshot %q: %w", key, err)
	}

	var snap domain.CatalogSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return domain.CatalogSnapshot{}, false, fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	if snap.Key == "" {
		snap.Key = key
	}

	return snap, true, nil
}

// Put stores the snapshot under its key with the given expiry.
func (s *RedisSnapshotStore) Put(
	ctx context.Context,
	snap domain.CatalogSnapshot,
	ttl time.Duration,
) (err error) {
	defer obs.Time(ctx, "catalog.redis.Put")(&err)

	if s.client == nil {
		return errors.New("redis snapshot store: client is nil")
	}
	if snap.Key == "" {
		return errors.New("put snapshot: key must not be empty")
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", snap.Key, err)
	}

	if err := s.client.Set(ctx, snap.Key, b, ttl).Err(); err != nil {
		return fmt.Errorf("put snapshot %q: %w", snap.Key, err)
	}

	return nil
}

// Delete removes the snapshot stored under key.
func (s *RedisSnapshotStore) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return errors.New("redis snapshot store: client is nil")
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", key, err)
	}
	return nil
}
