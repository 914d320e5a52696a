// Package cache holds the optional Redis-backed feed cache. A nil *Client is
// valid and means caching is disabled.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creatorlabs/creator-platform/internal/store"
)

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr, password string, db int, ttl time.Duration) (*Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Client{rdb: r, ttl: ttl}, nil
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

// GetFeed returns the cached document list for key, reporting a miss on any
// error so callers fall through to the store.
func (c *Client) GetFeed(ctx context.Context, key string) ([]store.Document, bool) {
	if c == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var docs []store.Document
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, false
	}
	return docs, true
}

func (c *Client) SetFeed(ctx context.Context, key string, docs []store.Document) {
	if c == nil {
		return
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
}
