package cache

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
)

// Sweeper периодически удаляет просроченные записи из MemoryBackend
type Sweeper struct {
	cron    *cron.Cron
	backend *MemoryBackend
	metrics *observability.Metrics
	logger  *logrus.Logger
}

// NewSweeper создаёт планировщик очистки с расписанием в формате cron ("@every 1m" и т.п.)
func NewSweeper(backend *MemoryBackend, schedule string, metrics *observability.Metrics, logger *logrus.Logger) (*Sweeper, error) {
	s := &Sweeper{
		cron:    cron.New(),
		backend: backend,
		metrics: metrics,
		logger:  logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("cache: invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Sweeper) run() {
	removed := s.backend.Sweep()
	if n, err := s.backend.Len(context.Background()); err == nil {
		s.metrics.CacheEntries.Set(float64(n))
	}
	if removed > 0 {
		s.logger.WithFields(logrus.Fields{
			"service": "Sweeper",
			"method":  "run",
			"removed": removed,
		}).Debug("Expired cache entries removed")
	}
}

// Start запускает планировщик
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждёт завершения текущего прохода
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}
