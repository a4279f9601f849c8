package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/climate_risk_grid/internal/events"
)

// QueueKey - список Redis, из которого воркер забирает события для доставки
const QueueKey = "climate_risk:webhook_events"

// RedisEventPublisher ставит события в очередь Redis для доставки вебхуком.
// Публикуются только события из списка типов, пустой список означает все.
type RedisEventPublisher struct {
	redisClient redis.Cmdable
	types       map[events.Type]bool
}

// NewRedisEventPublisher создаёт издателя
func NewRedisEventPublisher(client redis.Cmdable, types []events.Type) *RedisEventPublisher {
	p := &RedisEventPublisher{redisClient: client}
	if len(types) > 0 {
		p.types = make(map[events.Type]bool, len(types))
		for _, t := range types {
			p.types[t] = true
		}
	}
	return p
}

// Accepts сообщает, будет ли событие поставлено в очередь
func (p *RedisEventPublisher) Accepts(t events.Type) bool {
	return p.types == nil || p.types[t]
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event events.Event) error {
	if !p.Accepts(event.Type) {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, QueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
