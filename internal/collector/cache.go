package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"StockPulse/internal/logger"
	"StockPulse/internal/metrics"
	"StockPulse/internal/model"
)

// Cache stores JSON-encodable provider responses.
// Get reports false with a nil error on a miss.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// RedisCache implements Cache on a Redis server.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache connects to addr and verifies the connection.
func NewRedisCache(ctx context.Context, addr, password string, db int) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &RedisCache{rdb: rdb}, nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, dest)
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// MemoryCache is an in-process Cache for single-binary deployments.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !e.expires.IsZero() && c.now().After(e.expires) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(e.data, dest)
}

func (c *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var expires time.Time
	if ttl > 0 {
		expires = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{data: data, expires: expires}
	c.mu.Unlock()
	return nil
}

// CachedFetcher decorates a Fetcher with a read-through cache.
// Bars are keyed by provider, ticker, lookback and calendar day, so a cached
// series never outlives the trading day it was fetched on. Errors are never cached.
type CachedFetcher struct {
	next  Fetcher
	cache Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewCachedFetcher(next Fetcher, cache Cache, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{next: next, cache: cache, ttl: ttl, now: time.Now}
}

func (f *CachedFetcher) Name() string { return f.next.Name() }

func (f *CachedFetcher) FetchDailyBars(ctx context.Context, ticker string, lookbackDays int) ([]model.OHLCV, error) {
	key := fmt.Sprintf("stockpulse:bars:%s:%s:%d:%s", f.next.Name(), ticker, lookbackDays, f.now().UTC().Format("2006-01-02"))

	var cached []model.OHLCV
	if f.lookup(ctx, "bars", key, &cached) {
		return cached, nil
	}

	bars, err := f.next.FetchDailyBars(ctx, ticker, lookbackDays)
	if err != nil {
		return nil, err
	}
	if err := f.cache.Set(ctx, key, bars, f.ttl); err != nil {
		logger.Warnf("cache set %s failed: %v", key, err)
	}
	return bars, nil
}

func (f *CachedFetcher) CompanyName(ctx context.Context, ticker string) (string, error) {
	key := fmt.Sprintf("stockpulse:name:%s:%s", f.next.Name(), ticker)

	var cached string
	if f.lookup(ctx, "name", key, &cached) {
		return cached, nil
	}

	name, err := f.next.CompanyName(ctx, ticker)
	if err != nil {
		return "", err
	}
	// Names rarely change; keep them for a week.
	if err := f.cache.Set(ctx, key, name, 7*24*time.Hour); err != nil {
		logger.Warnf("cache set %s failed: %v", key, err)
	}
	return name, nil
}

func (f *CachedFetcher) lookup(ctx context.Context, kind, key string, dest interface{}) bool {
	hit, err := f.cache.Get(ctx, key, dest)
	switch {
	case err != nil:
		logger.Warnf("cache get %s failed, bypassing: %v", key, err)
		metrics.RecordCacheLookup(kind, "error")
		return false
	case hit:
		metrics.RecordCacheLookup(kind, "hit")
		return true
	default:
		metrics.RecordCacheLookup(kind, "miss")
		return false
	}
}
