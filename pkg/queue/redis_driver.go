package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisQueueKey = "charvi:queue:jobs"

// RedisDriver stores jobs in a Redis list so reminder mails survive a
// restart and can be worked by more than one process.
type RedisDriver struct {
	rdb *redis.Client
}

// NewRedisDriver wraps the given client, normally the one pkg/cache
// already holds.
func NewRedisDriver(rdb *redis.Client) *RedisDriver {
	return &RedisDriver{rdb: rdb}
}

func (d *RedisDriver) Push(payload []byte) error {
	if err := d.rdb.LPush(context.Background(), redisQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("queue: redis push: %w", err)
	}
	return nil
}

// Pop blocks up to five seconds waiting for a job. A nil payload with
// a nil error means the wait timed out and the caller should poll
// again.
func (d *RedisDriver) Pop(ctx context.Context) ([]byte, error) {
	res, err := d.rdb.BRPop(ctx, 5*time.Second, redisQueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("queue: redis pop: %w", err)
	}
	if len(res) < 2 {
		return nil, nil
	}
	return []byte(res[1]), nil
}
