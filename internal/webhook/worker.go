package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/climate_risk_grid/internal/config"
	"github.com/shenikar/climate_risk_grid/internal/events"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела запроса
const SignatureHeader = "X-Webhook-Signature"

// popTimeout ограничивает BRPOP, чтобы воркер замечал остановку
const popTimeout = 5 * time.Second

// EventWorker забирает события из очереди Redis и доставляет их на WEBHOOK_URL
type EventWorker struct {
	redisClient redis.Cmdable
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	done        chan struct{}
}

// NewEventWorker создает новый EventWorker
func NewEventWorker(redisClient redis.Cmdable, logger *logrus.Logger, cfg *config.Config) *EventWorker {
	return &EventWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		done: make(chan struct{}),
	}
}

// Start запускает горутину обработки очереди до отмены ctx
func (w *EventWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		defer close(w.done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}
			result, err := w.redisClient.BRPop(ctx, popTimeout, QueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
				sleepCtx(ctx, w.cfg.WebhookBaseDelay)
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.Process(ctx, result[1])
		}
	}()
}

// Done закрывается после остановки воркера
func (w *EventWorker) Done() <-chan struct{} {
	return w.done
}

// Process разбирает событие и доставляет его с повторами
func (w *EventWorker) Process(ctx context.Context, rawPayload string) {
	var event events.Event
	if err := json.Unmarshal([]byte(rawPayload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
		return
	}
	log := w.logger.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
	})

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	delay := w.cfg.WebhookBaseDelay
	for attempt := 1; attempt <= w.cfg.WebhookMaxRetries; attempt++ {
		err := w.deliver(ctx, rawPayload)
		if err == nil {
			log.WithField("attempt", attempt).Info("Webhook delivered successfully.")
			return
		}
		if attempt == w.cfg.WebhookMaxRetries {
			log.WithError(err).Errorf("Failed to deliver webhook after %d attempts.", attempt)
			return
		}
		log.WithError(err).Warnf("Webhook delivery failed. Retrying in %v. Retries left: %d", delay, w.cfg.WebhookMaxRetries-attempt)
		if !sleepCtx(ctx, delay) {
			return
		}
		delay *= 2 // экспоненциальная задержка
	}
}

func (w *EventWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// подпись добавляется, только если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint responded with status %d", resp.StatusCode)
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
