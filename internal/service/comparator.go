package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Comparator сравнивает оценки риска одной локации по нескольким сценариям
type Comparator struct {
	registry *LocationRegistry
	assess   AssessFunc
	clock    clockwork.Clock
	logger   *logrus.Logger
}

// NewComparator создаёт компаратор поверх функции оценки
func NewComparator(registry *LocationRegistry, assess AssessFunc, clock clockwork.Clock, logger *logrus.Logger) *Comparator {
	return &Comparator{
		registry: registry,
		assess:   assess,
		clock:    clock,
		logger:   logger,
	}
}

// Compare разрешает локацию, проверяет сценарии и оценивает их параллельно.
// Порядок результатов совпадает с порядком сценариев в запросе.
func (c *Comparator) Compare(ctx context.Context, location string, scenarios []string, year int) (*models.ScenarioComparison, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service":  "comparator",
		"method":   "Compare",
		"location": location,
	})

	loc, err := c.registry.Resolve(ctx, location)
	if err != nil {
		return nil, err
	}
	parsed, err := parseScenarios(scenarios)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = c.clock.Now().Year()
	}

	assessments := make([]*models.RiskAssessment, len(parsed))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range parsed {
		i, s := i, s // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			a, err := c.assess(gctx, loc, s, year)
			if err != nil {
				return fmt.Errorf("service: could not assess scenario %s: %w", s, err)
			}
			assessments[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Scenario comparison failed")
		return nil, err
	}

	minScore, maxScore := assessments[0].OverallRiskScore, assessments[0].OverallRiskScore
	for _, a := range assessments[1:] {
		minScore = min(minScore, a.OverallRiskScore)
		maxScore = max(maxScore, a.OverallRiskScore)
	}

	comparison := &models.ScenarioComparison{
		ID:          uuid.New(),
		Location:    loc,
		Horizon:     models.HorizonForYear(year),
		Assessments: assessments,
		Spread:      maxScore - minScore,
	}
	log.WithFields(logrus.Fields{
		"comparison_id": comparison.ID,
		"scenarios":     len(parsed),
		"spread":        comparison.Spread,
	}).Info("Scenario comparison completed")
	return comparison, nil
}
