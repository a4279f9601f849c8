package models

import "fmt"

// HazardType - тип физической климатической угрозы
type HazardType string

const (
	HazardFlood             HazardType = "flood"
	HazardDrought           HazardType = "drought"
	HazardHeatStress        HazardType = "heat_stress"
	HazardLandslide         HazardType = "landslide"
	HazardCoastalInundation HazardType = "coastal_inundation"
)

// AllHazards - стабильный порядок угроз во всех ответах
var AllHazards = []HazardType{
	HazardFlood,
	HazardDrought,
	HazardHeatStress,
	HazardLandslide,
	HazardCoastalInundation,
}

// ParseHazardType разбирает строковое имя угрозы
func ParseHazardType(s string) (HazardType, error) {
	for _, h := range AllHazards {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidHazard, s)
}

// QualityTier - качество данных источника угроз
type QualityTier string

const (
	QualityLive      QualityTier = "live"
	QualitySynthetic QualityTier = "synthetic"
	// QualityDegraded - живой источник отказал, значение взято из синтетического
	QualityDegraded QualityTier = "degraded"
)

// HazardIndicator - показатели одной угрозы для сценария
type HazardIndicator struct {
	HazardType        HazardType  `json:"hazard_type"`
	CurrentRisk       float64     `json:"current_risk"`
	ProjectedRisk2030 float64     `json:"projected_risk_2030"`
	ProjectedRisk2050 float64     `json:"projected_risk_2050"`
	Confidence        float64     `json:"confidence"`
	DataSource        string      `json:"data_source"`
	Quality           QualityTier `json:"quality"`
}

// ValueAt возвращает значение риска на заданном горизонте
func (h HazardIndicator) ValueAt(horizon Horizon) float64 {
	switch horizon {
	case Horizon2030:
		return h.ProjectedRisk2030
	case Horizon2050:
		return h.ProjectedRisk2050
	default:
		return h.CurrentRisk
	}
}
