package rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "rooms:page:"
	cacheTTL       = 30 * time.Second
)

// ListCache keeps listing pages in Redis for a short while. The listing
// is the hottest read in the service and tolerates slightly stale data;
// every room write invalidates all cached pages. A nil *ListCache is
// valid and caches nothing, which is how the service runs when Redis is
// not configured.
type ListCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewListCache(client *goredis.Client) *ListCache {
	return &ListCache{client: client, ttl: cacheTTL}
}

func (c *ListCache) key(page int) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, page)
}

// Get returns the cached page and whether it was present.
func (c *ListCache) Get(ctx context.Context, page int) ([]Room, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, c.key(page)).Result()
	if err != nil {
		return nil, false
	}

	var out []Room
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return nil, false
	}
	return out, true
}

// Set stores the page. Failures are ignored: the cache is best effort
// and the caller already has the rooms.
func (c *ListCache) Set(ctx context.Context, page int, list []Room) {
	if c == nil {
		return
	}

	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(page), data, c.ttl)
}

// Invalidate drops every cached page.
func (c *ListCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, cacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
