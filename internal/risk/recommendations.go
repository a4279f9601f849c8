package risk

import "github.com/shenikar/climate_risk_grid/internal/models"

var hazardActions = map[models.HazardType]map[models.RiskBand]string{
	models.HazardFlood: {
		models.BandModerate: "Flood risk is moderate: map flood-prone zones and keep drainage systems maintained",
		models.BandHigh:     "Flood risk is high: implement sustainable urban drainage and create retention areas such as floodable parks",
		models.BandCritical: "Flood risk is critical: restrict new occupation of flood plains and prepare evacuation routes",
	},
	models.HazardDrought: {
		models.BandModerate: "Drought risk is moderate: reduce water network losses and monitor reservoir levels",
		models.BandHigh:     "Drought risk is high: diversify water supply sources and expand water reuse",
		models.BandCritical: "Drought risk is critical: adopt a water rationing contingency plan and protect aquifers",
	},
	models.HazardHeatStress: {
		models.BandModerate: "Heat stress risk is moderate: expand urban tree cover in dense districts",
		models.BandHigh:     "Heat stress risk is high: create green corridors and install green roofs on public buildings",
		models.BandCritical: "Heat stress risk is critical: open cooling centers and issue heat-wave health alerts",
	},
	models.HazardLandslide: {
		models.BandModerate: "Landslide risk is moderate: monitor slopes and improve hillside drainage",
		models.BandHigh:     "Landslide risk is high: build retaining structures and deploy an early warning system",
		models.BandCritical: "Landslide risk is critical: relocate families living in high-risk slope areas",
	},
	models.HazardCoastalInundation: {
		models.BandModerate: "Coastal inundation risk is moderate: preserve mangroves and dunes as natural barriers",
		models.BandHigh:     "Coastal inundation risk is high: restrict occupation of vulnerable shoreline areas",
		models.BandCritical: "Coastal inundation risk is critical: build coastal defenses and a coastal evacuation plan",
	},
}

const (
	vulnerablePopulationThreshold = 0.3
	adaptiveCapacityThreshold     = 0.5

	recVulnerablePopulation = "High vulnerable population: prioritize low-income communities and set up emergency shelters"
	recLowAdaptiveCapacity  = "Low adaptive capacity: invest in resilient infrastructure and technical training"
	recAdaptationPlan       = "Prepare a municipal climate adaptation plan (Law 14.904/2024)"
	recMonitoring           = "Implement continuous climate risk monitoring"
)

// Recommendations строит рекомендации по уровням угроз на горизонте и уязвимости.
// Порядок детерминирован: угрозы в порядке AllHazards, затем уязвимость, затем общие.
func Recommendations(hazards []models.HazardIndicator, horizon models.Horizon, v models.VulnerabilityIndicator) []string {
	recs := make([]string, 0, len(hazards)+4)
	for _, h := range hazards {
		if text, ok := hazardActions[h.HazardType][models.BandFor(h.ValueAt(horizon))]; ok {
			recs = append(recs, text)
		}
	}
	if v.VulnerablePopulationPct > vulnerablePopulationThreshold {
		recs = append(recs, recVulnerablePopulation)
	}
	if v.AdaptiveCapacityScore < adaptiveCapacityThreshold {
		recs = append(recs, recLowAdaptiveCapacity)
	}
	return append(recs, recAdaptationPlan, recMonitoring)
}
