package cache

import (
	"fmt"

	"github.com/shenikar/climate_risk_grid/internal/models"
)

// schemaVersion меняется при несовместимом изменении сериализованных значений
const schemaVersion = "v1"

const (
	kindAssessment = "assessment"
	kindGrid       = "grid"
)

// AssessmentKey - ключ оценки риска. Зависит от ключа локации, сценария и горизонта.
func AssessmentKey(locationKey string, scenario models.Scenario, horizon models.Horizon) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s", kindAssessment, schemaVersion, locationKey, scenario, horizon)
}

// GridKey - ключ экспортированной сетки. minBand входит в ключ, так как фильтр меняет содержимое.
func GridKey(locationKey string, scenario models.Scenario, horizon models.Horizon, resolution, rings int, format models.GridFormat, minBand models.RiskBand) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s:r%d:k%d:%s:b%s", kindGrid, schemaVersion, locationKey, scenario, horizon, resolution, rings, format, minBand)
}
