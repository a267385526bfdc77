package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avevent/backend/config"
	"github.com/redis/go-redis/v9"
)

// ListingPage is a cached list response: the page of records plus the total
// row count the pagination envelope is derived from.
type ListingPage struct {
	Items json.RawMessage `json:"items"`
	Total int             `json:"total"`
}

type RedisCache struct {
	client     *redis.Client
	listingTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, listingTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		listingTTL: listingTTL,
	}
}

func (c *RedisCache) GetListing(ctx context.Context, entity string, page, limit int) (*ListingPage, error) {
	data, err := c.client.Get(ctx, listingKey(entity, page, limit)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cached ListingPage
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func (c *RedisCache) SetListing(ctx context.Context, entity string, page, limit int, listing ListingPage) error {
	payload, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingKey(entity, page, limit), payload, c.listingTTL).Err()
}

// InvalidateListing drops every cached page for an entity. Called after a
// write so readers never see stale pages past the current request.
func (c *RedisCache) InvalidateListing(ctx context.Context, entity string) error {
	pattern := fmt.Sprintf("cache:listing:%s:*", entity)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func listingKey(entity string, page, limit int) string {
	return fmt.Sprintf("cache:listing:%s:%d:%d", entity, page, limit)
}
