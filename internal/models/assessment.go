package models

import "github.com/google/uuid"

// VulnerabilityIndicator - социальная и инфраструктурная уязвимость территории
type VulnerabilityIndicator struct {
	PopulationExposed           int64   `json:"population_exposed"`
	CriticalInfrastructureCount int     `json:"critical_infrastructure_count"`
	VulnerablePopulationPct     float64 `json:"vulnerable_population_pct"`
	AdaptiveCapacityScore       float64 `json:"adaptive_capacity_score"`
}

// RiskAssessment - полная оценка риска для локации, сценария и горизонта.
// Не содержит временных меток: это чистая функция входных параметров.
type RiskAssessment struct {
	Location         Location               `json:"location"`
	Scenario         Scenario               `json:"scenario"`
	Horizon          Horizon                `json:"horizon"`
	ReferenceYear    int                    `json:"reference_year"`
	OverallRiskScore float64                `json:"overall_risk_score"`
	RiskBand         RiskBand               `json:"risk_band"`
	Hazards          []HazardIndicator      `json:"hazards"`
	Vulnerability    VulnerabilityIndicator `json:"vulnerability"`
	Recommendations  []string               `json:"recommendations"`
}

// Hazard возвращает индикатор угрозы по типу
func (a *RiskAssessment) Hazard(t HazardType) (HazardIndicator, bool) {
	for _, h := range a.Hazards {
		if h.HazardType == t {
			return h, true
		}
	}
	return HazardIndicator{}, false
}

// ScenarioComparison - результат сравнения сценариев для одной локации
type ScenarioComparison struct {
	ID          uuid.UUID         `json:"id"`
	Location    Location          `json:"location"`
	Horizon     Horizon           `json:"horizon"`
	Assessments []*RiskAssessment `json:"assessments"`
	// Spread - разница общего риска между самым тяжёлым и самым мягким сценарием
	Spread float64 `json:"spread"`
}
