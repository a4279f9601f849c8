package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Backend - хранилище сериализованных значений кеша
type Backend interface {
	// Get возвращает значение и признак попадания. Просроченные записи считаются промахом.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear удаляет все записи и возвращает их количество
	Clear(ctx context.Context) (int, error)
	Len(ctx context.Context) (int, error)
	Name() string
}

// Cache - кеш результатов с однократным вычислением на ключ
type Cache struct {
	backend Backend
	group   singleflight.Group
	metrics *observability.Metrics
	logger  *logrus.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats - статистика использования кеша
type Stats struct {
	Backend string  `json:"backend"`
	Entries int     `json:"entries"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// New создаёт кеш поверх бэкенда
func New(backend Backend, metrics *observability.Metrics, logger *logrus.Logger) *Cache {
	return &Cache{
		backend: backend,
		metrics: metrics,
		logger:  logger,
	}
}

// GetOrCompute возвращает закешированное значение или вычисляет его ровно один раз
// для всех одновременных вызовов с тем же ключом.
//
// Общее вычисление не зависит от отмены контекста отдельного вызывающего:
// отменённый вызывающий получает ctx.Err(), остальные - общий результат или общую ошибку.
// Ошибки не кешируются. Каждый вызывающий получает собственную копию значения.
func GetOrCompute[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	var zero T
	kind := keyKind(key)

	if data, ok := c.lookup(ctx, key); ok {
		c.record(kind, true)
		return decode[T](data)
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		// значение могло появиться, пока ждали входа в полёт
		if data, ok := c.lookup(flightCtx, key); ok {
			return flightResult{data: data, cached: true}, nil
		}
		v, err := compute(flightCtx)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cache: could not encode value for %s: %w", key, err)
		}
		if err := c.backend.Set(flightCtx, key, data, ttl); err != nil {
			c.degraded("Set", key, err)
		}
		return flightResult{data: data}, nil
	})

	select {
	case <-ctx.Done():
		c.record(kind, false)
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			c.record(kind, false)
			return zero, res.Err
		}
		fr := res.Val.(flightResult)
		c.record(kind, fr.cached)
		return decode[T](fr.data)
	}
}

// flightResult - результат общего вычисления; cached означает, что значение найдено в бэкенде
type flightResult struct {
	data   []byte
	cached bool
}

func (c *Cache) record(kind string, hit bool) {
	if hit {
		c.hits.Add(1)
		c.metrics.CacheLookups.WithLabelValues(kind, "hit").Inc()
		return
	}
	c.misses.Add(1)
	c.metrics.CacheLookups.WithLabelValues(kind, "miss").Inc()
}

func decode[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("cache: could not decode value: %w", err)
	}
	return out, nil
}

func (c *Cache) lookup(ctx context.Context, key string) ([]byte, bool) {
	data, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		c.degraded("Get", key, err)
		return nil, false
	}
	return data, ok
}

func (c *Cache) degraded(op, key string, err error) {
	c.metrics.CacheDegraded.Inc()
	c.logger.WithFields(logrus.Fields{
		"service": "Cache",
		"method":  op,
		"backend": c.backend.Name(),
		"key":     key,
	}).WithError(err).Warn("Cache backend unavailable, computing directly")
}

// Delete удаляет запись по ключу
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("cache: could not delete %s: %w", key, err)
	}
	return nil
}

// Clear удаляет все записи и сбрасывает счётчики
func (c *Cache) Clear(ctx context.Context) (int, error) {
	n, err := c.backend.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("cache: could not clear: %w", err)
	}
	c.hits.Store(0)
	c.misses.Store(0)
	c.logger.WithFields(logrus.Fields{
		"service": "Cache",
		"method":  "Clear",
		"removed": n,
	}).Info("Cache cleared")
	return n, nil
}

// Stats возвращает статистику попаданий
func (c *Cache) Stats(ctx context.Context) (Stats, error) {
	n, err := c.backend.Len(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("cache: could not count entries: %w", err)
	}
	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Backend: c.backend.Name(),
		Entries: n,
		Hits:    hits,
		Misses:  misses,
		HitRate: rate,
	}, nil
}

func keyKind(key string) string {
	kind, _, found := strings.Cut(key, ":")
	if !found {
		return "other"
	}
	switch kind {
	case kindAssessment, kindGrid:
		return kind
	}
	return "other"
}
