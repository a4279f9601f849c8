package risk

import (
	"math"

	"github.com/shenikar/climate_risk_grid/internal/models"
)

// Нормировочные константы адаптивной способности
const (
	gdpReferenceBRL     = 80000
	greenReferenceM2    = 100
	infraReferenceCount = 500
)

// Vulnerability считает индикатор уязвимости только по демографии
func Vulnerability(d models.Demographics) models.VulnerabilityIndicator {
	gdp := math.Min(d.GDPPerCapitaBRL/gdpReferenceBRL, 1)
	green := math.Min(d.GreenAreaPerCapitaM2/greenReferenceM2, 1)
	infra := math.Min(float64(d.CriticalInfrastructure)/infraReferenceCount, 1)

	return models.VulnerabilityIndicator{
		PopulationExposed:           int64(math.Floor(float64(d.Population) * d.VulnerablePopulationPct)),
		CriticalInfrastructureCount: d.CriticalInfrastructure,
		VulnerablePopulationPct:     d.VulnerablePopulationPct,
		AdaptiveCapacityScore:       round2((gdp + green + infra) / 3),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
