package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("product cache miss")

type listCacheEntry struct {
	Items []ProductResponse `json:"items"`
	Total int64             `json:"total"`
}

// ListCache menyimpan hasil list publik di redis.
// TTL diberi jitter agar entri tidak kedaluwarsa serentak.
type ListCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewListCache(client *redis.Client) *ListCache {
	return &ListCache{
		client:  client,
		baseTTL: 5 * time.Minute,
	}
}

func (c *ListCache) Get(ctx context.Context, key string) ([]ProductResponse, int64, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, 0, ErrCacheMiss
	}
	if err != nil {
		return nil, 0, fmt.Errorf("redis get failed: %w", err)
	}

	var entry listCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, 0, fmt.Errorf("unmarshal product list failed: %w", err)
	}

	return entry.Items, entry.Total, nil
}

func (c *ListCache) Set(ctx context.Context, key string, items []ProductResponse, total int64) error {
	payload, err := json.Marshal(listCacheEntry{Items: items, Total: total})
	if err != nil {
		return fmt.Errorf("marshal product list failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(60)) * time.Second
	ttl := c.baseTTL + jitter
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Invalidate membuang semua entri list setelah mutasi produk.
func (c *ListCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "products:list:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis delete failed: %w", err)
		}
	}
	return iter.Err()
}

func listCacheKey(q ListPublicQuery) string {
	return fmt.Sprintf("products:list:%d:%d:%s:%s:%s:%s",
		q.Page, q.Limit, q.Search, q.CategoryID, q.SortBy, q.SortDir)
}
