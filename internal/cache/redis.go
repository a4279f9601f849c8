package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/climate_risk_grid/internal/models"
)

const scanBatch = 200

// RedisBackend хранит значения в Redis, срок жизни контролирует сервер
type RedisBackend struct {
	client redis.Cmdable
	prefix string
}

// NewRedisBackend создаёт хранилище с префиксом ключей
func NewRedisBackend(client redis.Cmdable, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) Name() string { return "redis" }

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get: %v", models.ErrCacheBackendUnavailable, err)
	}
	return data, true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", models.ErrCacheBackendUnavailable, err)
	}
	return nil
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", models.ErrCacheBackendUnavailable, err)
	}
	return nil
}

func (r *RedisBackend) Clear(ctx context.Context) (int, error) {
	removed := 0
	err := r.scan(ctx, func(keys []string) error {
		n, err := r.client.Del(ctx, keys...).Result()
		removed += int(n)
		return err
	})
	if err != nil {
		return removed, fmt.Errorf("%w: clear: %v", models.ErrCacheBackendUnavailable, err)
	}
	return removed, nil
}

func (r *RedisBackend) Len(ctx context.Context) (int, error) {
	total := 0
	err := r.scan(ctx, func(keys []string) error {
		total += len(keys)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: scan: %v", models.ErrCacheBackendUnavailable, err)
	}
	return total, nil
}

func (r *RedisBackend) scan(ctx context.Context, fn func(keys []string) error) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := fn(keys); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
