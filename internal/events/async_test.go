package events

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// blockingPublisher ждёт отмены контекста и считает вызовы
type blockingPublisher struct {
	mu        sync.Mutex
	calls     int
	delivered []Event
	block     bool
}

func (b *blockingPublisher) Publish(ctx context.Context, e Event) error {
	b.mu.Lock()
	b.calls++
	block := b.block
	b.mu.Unlock()
	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	b.mu.Lock()
	b.delivered = append(b.delivered, e)
	b.mu.Unlock()
	return nil
}

func (b *blockingPublisher) snapshot() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls, len(b.delivered)
}

func TestPublishWithin_BoundsSlowPublisher(t *testing.T) {
	slow := &blockingPublisher{block: true}

	start := time.Now()
	err := PublishWithin(context.Background(), slow, New(TypeGridBuilt, "ibge:1", eventTime), 30*time.Millisecond)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPublishWithin_IgnoresCallerCancellation(t *testing.T) {
	rec := &recordingPublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, PublishWithin(ctx, rec, New(TypeGridBuilt, "ibge:1", eventTime), time.Second))
	assert.Len(t, rec.got, 1)
}

func TestAsyncPublisher_DoesNotBlockOnSlowSink(t *testing.T) {
	slow := &blockingPublisher{block: true}
	p := NewAsyncPublisher(slow, 4, 20*time.Millisecond, observability.NewMetricsForTesting(), discardLogger())
	defer p.Close()

	start := time.Now()
	for i := 0; i < 4; i++ {
		_ = p.Publish(context.Background(), New(TypeAssessmentComputed, "ibge:3550308", eventTime))
	}
	assert.Less(t, time.Since(start), 20*time.Millisecond)
}

func TestAsyncPublisher_DropsWhenQueueIsFull(t *testing.T) {
	slow := &blockingPublisher{block: true}
	p := NewAsyncPublisher(slow, 1, 50*time.Millisecond, observability.NewMetricsForTesting(), discardLogger())
	defer p.Close()

	var errs []error
	for i := 0; i < 5; i++ {
		errs = append(errs, p.Publish(context.Background(), New(TypeGridBuilt, "ibge:1", eventTime)))
	}

	var full int
	for _, err := range errs {
		if errors.Is(err, ErrQueueFull) {
			full++
		}
	}
	// воркер держит не больше одного события, очередь вмещает ещё одно
	assert.GreaterOrEqual(t, full, 3)
}

func TestAsyncPublisher_CloseDrainsQueue(t *testing.T) {
	sink := &blockingPublisher{}
	p := NewAsyncPublisher(sink, 16, time.Second, observability.NewMetricsForTesting(), discardLogger())

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Publish(context.Background(), New(TypeGridBuilt, "ibge:1", eventTime)))
	}
	p.Close()

	_, delivered := sink.snapshot()
	assert.Equal(t, 10, delivered)
	assert.ErrorIs(t, p.Publish(context.Background(), New(TypeGridBuilt, "ibge:1", eventTime)), ErrPublisherClosed)
}
