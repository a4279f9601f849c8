package risk

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/climate_risk_grid/internal/datasource"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ProfileProvider поставляет статическую демографию локации
type ProfileProvider interface {
	Demographics(ctx context.Context, loc models.Location) (models.Demographics, error)
}

// Engine - движок агрегации климатического риска. Не хранит состояния между вызовами.
type Engine struct {
	source   datasource.HazardDataSource
	profiles ProfileProvider
	clock    clockwork.Clock
	metrics  *observability.Metrics
	logger   *logrus.Logger
}

// NewEngine создаёт движок
func NewEngine(
	source datasource.HazardDataSource,
	profiles ProfileProvider,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *logrus.Logger,
) *Engine {
	return &Engine{
		source:   source,
		profiles: profiles,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
	}
}

// AssessRisk считает полную оценку риска. referenceYear = 0 означает текущий год.
func (e *Engine) AssessRisk(ctx context.Context, loc models.Location, scenario models.Scenario, referenceYear int) (*models.RiskAssessment, error) {
	logger := e.logger.WithFields(logrus.Fields{
		"service":  "Engine",
		"method":   "AssessRisk",
		"location": loc.Key(),
		"scenario": scenario,
	})

	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	if referenceYear == 0 {
		referenceYear = e.clock.Now().Year()
	}
	horizon := models.HorizonForYear(referenceYear)
	start := e.clock.Now()

	demographics, err := e.profiles.Demographics(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("risk: could not resolve demographics: %w", err)
	}

	baselines := make([]datasource.Baseline, len(models.AllHazards))
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range models.AllHazards {
		i, h := i, h // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			b, err := e.source.FetchBaseline(gctx, loc, h)
			if err != nil {
				return fmt.Errorf("risk: could not fetch %s baseline: %w", h, err)
			}
			baselines[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Failed to fetch hazard baselines")
		return nil, err
	}

	hazards := make([]models.HazardIndicator, len(models.AllHazards))
	for i, h := range models.AllHazards {
		hazards[i] = Indicator(h, baselines[i], scenario)
	}

	overall := OverallScore(hazards, horizon)
	vulnerability := Vulnerability(demographics)

	assessment := &models.RiskAssessment{
		Location:         loc,
		Scenario:         scenario,
		Horizon:          horizon,
		ReferenceYear:    referenceYear,
		OverallRiskScore: overall,
		RiskBand:         models.BandFor(overall),
		Hazards:          hazards,
		Vulnerability:    vulnerability,
		Recommendations:  Recommendations(hazards, horizon, vulnerability),
	}

	e.metrics.AssessmentsComputed.WithLabelValues(string(scenario)).Inc()
	e.metrics.AssessmentDuration.Observe(e.clock.Since(start).Seconds())
	logger.WithFields(logrus.Fields{
		"horizon":    horizon,
		"risk_score": overall,
		"risk_band":  assessment.RiskBand,
	}).Info("Risk assessment computed")

	return assessment, nil
}

// Indicator строит индикатор угрозы из базового значения
func Indicator(h models.HazardType, b datasource.Baseline, scenario models.Scenario) models.HazardIndicator {
	current, p2030, p2050 := Project(b.Value, scenario)
	return models.HazardIndicator{
		HazardType:        h,
		CurrentRisk:       current,
		ProjectedRisk2030: p2030,
		ProjectedRisk2050: p2050,
		Confidence:        Confidence(h, b.Quality),
		DataSource:        b.Source,
		Quality:           b.Quality,
	}
}
