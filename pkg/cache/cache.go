// Package cache wraps the shared Redis client. Redis is optional: when
// Connect fails every helper degrades to a miss, so the report
// aggregates just recompute and the queue stays on the memory driver.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/charvi/config"
)

// RDB is the shared client, nil when Redis is unreachable.
var RDB *redis.Client

// Ctx is the background context the helpers use.
var Ctx = context.Background()

// Connect opens the client and pings it. On failure RDB stays nil and
// the helpers no-op.
func Connect() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})
	if err := client.Ping(Ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	RDB = client
	return nil
}

// Get loads key into dest, reporting whether it was a hit.
func Get(key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}
	raw, err := RDB.Get(Ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores value as JSON under key for ttl.
func Set(key string, value interface{}, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RDB.Set(Ctx, key, raw, ttl).Err()
}

// Remember loads key into dest, computing and caching it via fn on a
// miss. Errors from fn pass through; cache failures count as misses.
func Remember(key string, ttl time.Duration, dest interface{}, fn func() (interface{}, error)) error {
	if Get(key, dest) {
		return nil
	}

	value, err := fn()
	if err != nil {
		return err
	}
	_ = Set(key, value, ttl)

	// Round-trip through JSON so dest matches what a later hit returns.
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
