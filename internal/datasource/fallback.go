package datasource

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/climate_risk_grid/internal/events"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
)

// FallbackSource опрашивает живой источник с ограничением по времени и при отказе
// переходит на резервный. Значение резервного источника помечается как degraded.
type FallbackSource struct {
	primary   HazardDataSource
	fallback  HazardDataSource
	timeout   time.Duration
	publisher events.Publisher
	clock     clockwork.Clock
	metrics   *observability.Metrics
	logger    *logrus.Logger
}

// EventPublishTimeout ограничивает публикацию события о деградации
const EventPublishTimeout = 200 * time.Millisecond

// NewFallbackSource создаёт источник с деградацией
func NewFallbackSource(
	primary, fallback HazardDataSource,
	timeout time.Duration,
	publisher events.Publisher,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *logrus.Logger,
) *FallbackSource {
	return &FallbackSource{
		primary:   primary,
		fallback:  fallback,
		timeout:   timeout,
		publisher: publisher,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
	}
}

// FetchBaseline возвращает значение живого источника или деградированное резервное
func (s *FallbackSource) FetchBaseline(ctx context.Context, loc models.Location, hazard models.HazardType) (Baseline, error) {
	logger := s.logger.WithFields(logrus.Fields{
		"service":  "FallbackSource",
		"method":   "FetchBaseline",
		"location": loc.Key(),
		"hazard":   hazard,
	})

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	b, err := s.primary.FetchBaseline(callCtx, loc, hazard)
	cancel()
	if err == nil {
		return b, nil
	}
	if ctx.Err() != nil {
		return Baseline{}, ctx.Err()
	}

	logger.WithError(err).Warn("Live data source failed, using synthetic fallback")
	s.metrics.DataSourceFallbacks.WithLabelValues(string(hazard)).Inc()

	fb, ferr := s.fallback.FetchBaseline(ctx, loc, hazard)
	if ferr != nil {
		return Baseline{}, fmt.Errorf("fallback source: %w", ferr)
	}
	fb.Quality = models.QualityDegraded

	event := events.New(events.TypeFallbackUsed, loc.Key(), s.clock.Now())
	event.Hazard = string(hazard)
	event.Attributes = map[string]any{"reason": err.Error()}
	if perr := events.PublishWithin(ctx, s.publisher, event, EventPublishTimeout); perr != nil {
		s.metrics.EventsPublishFailed.Inc()
		logger.WithError(perr).Error("Failed to publish fallback event")
	}
	return fb, nil
}
