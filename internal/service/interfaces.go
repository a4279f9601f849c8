package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/shenikar/climate_risk_grid/internal/cache"
	"github.com/shenikar/climate_risk_grid/internal/grid"
	"github.com/shenikar/climate_risk_grid/internal/models"
)

// MunicipalityRepository определяет контракт реестра муниципалитетов
type MunicipalityRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Municipality, error)
	Nearest(ctx context.Context, lat, lon, maxDistanceKm float64) (*models.Municipality, error)
	List(ctx context.Context, filter models.MunicipalityFilter) ([]*models.Municipality, error)
}

// RiskService определяет контракт бизнес-логики оценки климатического риска
type RiskService interface {
	AssessRisk(ctx context.Context, q models.AssessmentQuery) (*models.RiskAssessment, error)
	RiskGrid(ctx context.Context, q models.GridQuery) (*grid.Export, error)
	CompareScenarios(ctx context.Context, q models.ComparisonQuery) (*models.ScenarioComparison, error)
	HazardIndicators(ctx context.Context, q models.HazardQuery) ([]models.HazardIndicator, error)
	ListMunicipalities(ctx context.Context, filter models.MunicipalityFilter) ([]*models.Municipality, error)
	GetMunicipality(ctx context.Context, code string) (*models.Municipality, error)
	CacheStats(ctx context.Context) (cache.Stats, error)
	ClearCache(ctx context.Context) (int, error)
}

// Assessor - движок оценки риска без кеша
type Assessor interface {
	AssessRisk(ctx context.Context, loc models.Location, scenario models.Scenario, referenceYear int) (*models.RiskAssessment, error)
}

// AssessFunc - оценка риска для разрешённой локации (обычно через кеш)
type AssessFunc func(ctx context.Context, loc models.Location, scenario models.Scenario, year int) (*models.RiskAssessment, error)
