package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cart cache miss")

// SnapshotCache menyimpan snapshot cart per userKey di redis.
type SnapshotCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	return &SnapshotCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

func (c *SnapshotCache) Get(ctx context.Context, userKey string) (*SnapshotResponse, error) {
	data, err := c.client.Get(ctx, snapshotKey(userKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snapshot SnapshotResponse
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal cart snapshot failed: %w", err)
	}

	return &snapshot, nil
}

func (c *SnapshotCache) Set(ctx context.Context, userKey string, snapshot SnapshotResponse) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal cart snapshot failed: %w", err)
	}

	// Jitter mencegah entri kedaluwarsa serentak
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := c.baseTTL + jitter
	if err := c.client.Set(ctx, snapshotKey(userKey), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *SnapshotCache) Delete(ctx context.Context, userKey string) error {
	if err := c.client.Del(ctx, snapshotKey(userKey)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func snapshotKey(userKey string) string {
	return fmt.Sprintf("cart:snapshot:%s", userKey)
}
