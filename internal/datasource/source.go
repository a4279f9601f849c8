package datasource

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

import (
	"context"

	"github.com/shenikar/climate_risk_grid/internal/models"
)

// Baseline - базовая восприимчивость локации к угрозе, не зависящая от сценария
type Baseline struct {
	Value   float64
	Quality models.QualityTier
	Source  string
}

// HazardDataSource - поставщик базовых значений угроз.
// Для одной и той же локации и угрозы обязан возвращать одно и то же значение.
type HazardDataSource interface {
	FetchBaseline(ctx context.Context, loc models.Location, hazard models.HazardType) (Baseline, error)
}
