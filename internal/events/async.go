package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull       = errors.New("events: publish queue is full")
	ErrPublisherClosed = errors.New("events: publisher is closed")
)

// AsyncPublisher ставит события в ограниченную очередь и доставляет их фоновым воркером.
// Publish не блокируется: при переполнении очереди событие отбрасывается с ErrQueueFull.
type AsyncPublisher struct {
	next    Publisher
	queue   chan Event
	timeout time.Duration
	metrics *observability.Metrics
	logger  *logrus.Logger

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewAsyncPublisher создаёт издателя и запускает воркер доставки
func NewAsyncPublisher(next Publisher, queueSize int, timeout time.Duration, metrics *observability.Metrics, logger *logrus.Logger) *AsyncPublisher {
	if queueSize < 1 {
		queueSize = 1
	}
	p := &AsyncPublisher{
		next:    next,
		queue:   make(chan Event, queueSize),
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
		done:    make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Publish ставит событие в очередь
func (p *AsyncPublisher) Publish(_ context.Context, event Event) error {
	select {
	case <-p.done:
		return ErrPublisherClosed
	default:
	}
	select {
	case p.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close останавливает приём событий и доставляет уже поставленные в очередь
func (p *AsyncPublisher) Close() {
	p.closeOnce.Do(func() { close(p.done) })
	p.wg.Wait()
}

func (p *AsyncPublisher) run() {
	defer p.wg.Done()
	for {
		select {
		case event := <-p.queue:
			p.deliver(event)
		case <-p.done:
			for {
				select {
				case event := <-p.queue:
					p.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (p *AsyncPublisher) deliver(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if err := p.next.Publish(ctx, event); err != nil {
		p.metrics.EventsPublishFailed.Inc()
		p.logger.WithFields(logrus.Fields{
			"service":    "AsyncPublisher",
			"method":     "deliver",
			"event_type": event.Type,
			"event_id":   event.ID,
		}).WithError(err).Error("Failed to deliver event")
	}
}
