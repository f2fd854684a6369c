package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entity key namespaces. Every mutation declares which of these it
// invalidates, which makes the consistency rules explicit instead of being
// scattered across call sites.
const (
	KeyTickets  = "tickets"
	KeyBids     = "bids"
	KeyInvoices = "invoices"
	KeyVendors  = "vendors"
	KeyOrgs     = "orgs"
)

var ErrMiss = errors.New("cache miss")

// Cache is a redis-backed read cache keyed by entity namespace. Values are
// JSON-encoded; a miss falls through to the database.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// NewClient dials redis from a URL, falling back to a plain address.
func NewClient(url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	return redis.NewClient(opts)
}

func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops every cached value under the given namespaces. Failures
// are logged, not propagated: a stale read heals on TTL expiry and must not
// fail the mutation that triggered the invalidation.
func (c *Cache) Invalidate(ctx context.Context, namespaces ...string) {
	for _, ns := range namespaces {
		iter := c.rdb.Scan(ctx, 0, ns+":*", 0).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			log.Printf("cache invalidate scan %s: %v", ns, err)
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			log.Printf("cache invalidate del %s: %v", ns, err)
		}
	}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
