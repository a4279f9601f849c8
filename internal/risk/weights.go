package risk

import "github.com/shenikar/climate_risk_grid/internal/models"

// Веса угроз в общем риске, сумма равна 1
var hazardWeights = map[models.HazardType]float64{
	models.HazardFlood:             0.30,
	models.HazardHeatStress:        0.25,
	models.HazardDrought:           0.20,
	models.HazardLandslide:         0.15,
	models.HazardCoastalInundation: 0.10,
}

// Weight возвращает вес угрозы в общем риске
func Weight(h models.HazardType) float64 {
	return hazardWeights[h]
}

// baseConfidence - базовая уверенность по угрозе для синтетических данных
var baseConfidence = map[models.HazardType]float64{
	models.HazardFlood:             0.55,
	models.HazardDrought:           0.60,
	models.HazardHeatStress:        0.65,
	models.HazardLandslide:         0.50,
	models.HazardCoastalInundation: 0.55,
}

const (
	liveConfidenceBonus   = 0.25
	maxConfidence         = 0.95
	degradedConfidenceCut = 0.10
)

// Confidence зависит от угрозы и качества данных
func Confidence(h models.HazardType, q models.QualityTier) float64 {
	base := baseConfidence[h]
	switch q {
	case models.QualityLive:
		if c := base + liveConfidenceBonus; c < maxConfidence {
			return round2(c)
		}
		return maxConfidence
	case models.QualityDegraded:
		return round2(base - degradedConfidenceCut)
	default:
		return base
	}
}

// Project строит прогноз угрозы на все горизонты из базового значения.
// current <= 2030 <= 2050 выполняется при любом b >= 0.
func Project(b float64, scenario models.Scenario) (current, p2030, p2050 float64) {
	current = models.Clamp01(b)
	p2030 = models.Clamp01(b * (1 + scenario.Acceleration(models.Horizon2030)))
	p2050 = models.Clamp01(b * (1 + scenario.Acceleration(models.Horizon2050)))
	return current, p2030, p2050
}

// OverallScore - взвешенная сумма значений угроз на горизонте
func OverallScore(hazards []models.HazardIndicator, horizon models.Horizon) float64 {
	var score float64
	for _, h := range hazards {
		score += Weight(h.HazardType) * h.ValueAt(horizon)
	}
	return models.Clamp01(score)
}
