package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/climate_risk_grid/internal/cache"
	"github.com/shenikar/climate_risk_grid/internal/events"
	"github.com/shenikar/climate_risk_grid/internal/grid"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
)

// Options - параметры сервиса оценки риска
type Options struct {
	AssessmentTTL time.Duration
	GridTTL       time.Duration
	// PublishTimeout ограничивает публикацию одного события; 0 - DefaultPublishTimeout
	PublishTimeout time.Duration
}

// DefaultPublishTimeout - предел публикации события внутри вычисления
const DefaultPublishTimeout = 200 * time.Millisecond

type riskService struct {
	registry   *LocationRegistry
	engine     Assessor
	grids      *grid.Service
	cache      *cache.Cache
	comparator *Comparator
	publisher  events.Publisher
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *logrus.Logger
	opts       Options
}

func NewRiskService(
	registry *LocationRegistry,
	engine Assessor,
	grids *grid.Service,
	resultCache *cache.Cache,
	publisher events.Publisher,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *logrus.Logger,
	opts Options,
) RiskService {
	if opts.PublishTimeout <= 0 {
		opts.PublishTimeout = DefaultPublishTimeout
	}
	s := &riskService{
		registry:  registry,
		engine:    engine,
		grids:     grids,
		cache:     resultCache,
		publisher: publisher,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
		opts:      opts,
	}
	s.comparator = NewComparator(registry, s.assess, clock, logger)
	return s
}

// AssessRisk возвращает оценку риска для локации, сценария и года
func (s *riskService) AssessRisk(ctx context.Context, q models.AssessmentQuery) (*models.RiskAssessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "risk",
		"method":   "AssessRisk",
		"location": q.Location,
		"scenario": q.Scenario,
		"year":     q.Year,
	})

	loc, err := s.registry.Resolve(ctx, q.Location)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve location")
		return nil, err
	}
	scenario, err := parseScenario(q.Scenario)
	if err != nil {
		return nil, err
	}

	assessment, err := s.assess(ctx, loc, scenario, q.Year)
	if err != nil {
		log.WithError(err).Error("Failed to assess risk")
		return nil, err
	}
	return assessment, nil
}

// assess - оценка риска через кеш. Ключ зависит от горизонта, а не от года,
// поэтому ReferenceYear проставляется в копию каждого вызывающего.
func (s *riskService) assess(ctx context.Context, loc models.Location, scenario models.Scenario, year int) (*models.RiskAssessment, error) {
	if year == 0 {
		year = s.clock.Now().Year()
	}
	key := cache.AssessmentKey(loc.Key(), scenario, models.HorizonForYear(year))

	assessment, err := cache.GetOrCompute(ctx, s.cache, key, s.opts.AssessmentTTL,
		func(ctx context.Context) (*models.RiskAssessment, error) {
			a, err := s.engine.AssessRisk(ctx, loc, scenario, year)
			if err != nil {
				return nil, err
			}
			s.publishAssessment(ctx, a)
			return a, nil
		})
	if err != nil {
		return nil, fmt.Errorf("service: could not assess risk: %w", err)
	}
	assessment.ReferenceYear = year
	return assessment, nil
}

// RiskGrid строит (или берёт из кеша) экспортированную сетку риска
func (s *riskService) RiskGrid(ctx context.Context, q models.GridQuery) (*grid.Export, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "risk",
		"method":     "RiskGrid",
		"location":   q.Location,
		"resolution": q.Resolution,
		"rings":      q.Rings,
		"format":     q.Format,
		"min_band":   q.MinBand,
	})

	loc, err := s.registry.Resolve(ctx, q.Location)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve location")
		return nil, err
	}
	scenario, err := parseScenario(q.Scenario)
	if err != nil {
		return nil, err
	}
	format, err := models.ParseGridFormat(q.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, q.Format)
	}
	minBand, err := models.ParseRiskBand(q.MinBand)
	if err != nil {
		return nil, err
	}
	year := q.Year
	if year == 0 {
		year = s.clock.Now().Year()
	}

	req := grid.Request{
		Location:   loc,
		Resolution: q.Resolution,
		RingCount:  q.Rings,
		Scenario:   scenario,
		Year:       year,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := cache.GridKey(loc.Key(), scenario, models.HorizonForYear(year), q.Resolution, q.Rings, format, minBand)
	export, err := cache.GetOrCompute(ctx, s.cache, key, s.opts.GridTTL,
		func(ctx context.Context) (*grid.Export, error) {
			g, err := s.grids.BuildGrid(ctx, req, s.assess)
			if err != nil {
				return nil, err
			}
			e, err := grid.Render(grid.FilterByBand(g, minBand), format)
			if err != nil {
				return nil, err
			}
			if minBand != models.BandLow {
				e.MinBand = minBand
			}
			s.publishGrid(ctx, g)
			return e, nil
		})
	if err != nil {
		log.WithError(err).Error("Failed to build risk grid")
		return nil, fmt.Errorf("service: could not build grid: %w", err)
	}
	return export, nil
}

// HazardIndicators возвращает показатели угроз муниципалитета из кешированной оценки
func (s *riskService) HazardIndicators(ctx context.Context, q models.HazardQuery) ([]models.HazardIndicator, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "risk",
		"method":   "HazardIndicators",
		"code":     q.Code,
		"scenario": q.Scenario,
		"hazard":   q.Hazard,
	})

	var hazard models.HazardType
	if q.Hazard != "" {
		h, err := models.ParseHazardType(q.Hazard)
		if err != nil {
			return nil, err
		}
		hazard = h
	}
	scenario, err := parseScenario(q.Scenario)
	if err != nil {
		return nil, err
	}
	loc, err := s.registry.ResolveCode(ctx, q.Code)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve municipality")
		return nil, err
	}

	assessment, err := s.assess(ctx, loc, scenario, q.Year)
	if err != nil {
		log.WithError(err).Error("Failed to assess risk")
		return nil, err
	}
	if hazard == "" {
		return assessment.Hazards, nil
	}
	out := make([]models.HazardIndicator, 0, 1)
	if h, ok := assessment.Hazard(hazard); ok {
		out = append(out, h)
	}
	return out, nil
}

// CompareScenarios сравнивает сценарии для одной локации
func (s *riskService) CompareScenarios(ctx context.Context, q models.ComparisonQuery) (*models.ScenarioComparison, error) {
	return s.comparator.Compare(ctx, q.Location, q.Scenarios, q.Year)
}

func (s *riskService) ListMunicipalities(ctx context.Context, filter models.MunicipalityFilter) ([]*models.Municipality, error) {
	return s.registry.ListMunicipalities(ctx, filter)
}

func (s *riskService) GetMunicipality(ctx context.Context, code string) (*models.Municipality, error) {
	return s.registry.GetMunicipality(ctx, code)
}

func (s *riskService) CacheStats(ctx context.Context) (cache.Stats, error) {
	return s.cache.Stats(ctx)
}

// ClearCache очищает кеш результатов
func (s *riskService) ClearCache(ctx context.Context) (int, error) {
	n, err := s.cache.Clear(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "risk",
			"method":  "ClearCache",
		}).WithError(err).Error("Failed to clear cache")
		return 0, err
	}
	return n, nil
}

func (s *riskService) publishAssessment(ctx context.Context, a *models.RiskAssessment) {
	event := events.New(events.TypeAssessmentComputed, a.Location.Key(), s.clock.Now())
	event.Scenario = string(a.Scenario)
	event.RiskScore = a.OverallRiskScore
	event.Attributes = map[string]any{"horizon": string(a.Horizon), "risk_band": string(a.RiskBand)}
	s.publish(ctx, event)

	if a.RiskBand == models.BandCritical {
		critical := events.New(events.TypeCriticalRisk, a.Location.Key(), s.clock.Now())
		critical.Scenario = string(a.Scenario)
		critical.RiskScore = a.OverallRiskScore
		critical.Attributes = map[string]any{"horizon": string(a.Horizon)}
		s.publish(ctx, critical)
	}
}

func (s *riskService) publishGrid(ctx context.Context, g *models.Grid) {
	event := events.New(events.TypeGridBuilt, g.LocationKey, s.clock.Now())
	event.Scenario = string(g.Scenario)
	event.RiskScore = g.Stats.AvgRisk
	event.Attributes = map[string]any{
		"resolution":  g.Resolution,
		"rings":       g.RingCount,
		"cells":       g.Stats.CellCount,
		"center_cell": g.CenterCell,
	}
	s.publish(ctx, event)
}

// publish не прерывает запрос при ошибке доставки события. Вызывается внутри общего
// вычисления кеша, поэтому длительность ограничена PublishTimeout.
func (s *riskService) publish(ctx context.Context, event events.Event) {
	if err := events.PublishWithin(ctx, s.publisher, event, s.opts.PublishTimeout); err != nil {
		s.metrics.EventsPublishFailed.Inc()
		s.logger.WithFields(logrus.Fields{
			"service":    "risk",
			"method":     "publish",
			"event_type": event.Type,
		}).WithError(err).Error("Failed to publish event")
	}
}
