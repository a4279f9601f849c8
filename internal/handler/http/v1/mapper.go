package v1

import (
	"github.com/shenikar/climate_risk_grid/internal/cache"
	"github.com/shenikar/climate_risk_grid/internal/models"
)

// DTOToAssessmentQuery преобразует DTO в запрос сервиса
func DTOToAssessmentQuery(dto AssessmentRequest) models.AssessmentQuery {
	return models.AssessmentQuery{
		Location: dto.Location,
		Scenario: dto.Scenario,
		Year:     dto.Year,
	}
}

// DTOToGridQuery преобразует DTO в запрос сетки
func DTOToGridQuery(dto GridRequest) models.GridQuery {
	return models.GridQuery{
		Location:   dto.Location,
		Scenario:   dto.Scenario,
		Year:       dto.Year,
		Resolution: dto.Resolution,
		Rings:      dto.Rings,
		Format:     dto.Format,
		MinBand:    dto.MinBand,
	}
}

// DTOToHazardQuery преобразует DTO и код из пути в запрос угроз
func DTOToHazardQuery(code string, dto HazardRequest) models.HazardQuery {
	return models.HazardQuery{
		Code:     code,
		Scenario: dto.Scenario,
		Hazard:   dto.HazardType,
		Year:     dto.Year,
	}
}

// DTOToComparisonQuery преобразует DTO в запрос сравнения
func DTOToComparisonQuery(dto ComparisonRequest) models.ComparisonQuery {
	return models.ComparisonQuery{
		Location:  dto.Location,
		Scenarios: dto.Scenarios,
		Year:      dto.Year,
	}
}

// StatsToResponse преобразует статистику кеша в DTO
func StatsToResponse(s cache.Stats) CacheStatsResponse {
	return CacheStatsResponse{
		Backend: s.Backend,
		Entries: s.Entries,
		Hits:    s.Hits,
		Misses:  s.Misses,
		HitRate: s.HitRate,
	}
}

// riskBands строит справочник порогов из констант модели
func riskBands() RiskBandsResponse {
	bounds := []float64{0, models.ModerateThreshold, models.HighThreshold, models.CriticalThreshold, 1}
	bands := make([]BandResponse, len(models.AllBands))
	for i, b := range models.AllBands {
		bands[i] = BandResponse{Band: b, Min: bounds[i], Max: bounds[i+1]}
	}
	return RiskBandsResponse{
		Bands:     bands,
		Hazards:   models.AllHazards,
		Scenarios: models.AllScenarios,
	}
}
