package v1

import (
	"github.com/shenikar/climate_risk_grid/internal/models"
)

// AssessmentRequest DTO query-параметров оценки риска
// @Description DTO запроса оценки риска
type AssessmentRequest struct {
	Location string `form:"location" validate:"required,max=64"`
	Scenario string `form:"scenario" validate:"omitempty,max=16"`
	Year     int    `form:"year" validate:"omitempty,gte=2000,lte=2100"`
}

// GridRequest DTO query-параметров сетки риска
// @Description DTO запроса гексагональной сетки риска
type GridRequest struct {
	Location   string `form:"location" validate:"required,max=64"`
	Scenario   string `form:"scenario" validate:"omitempty,max=16"`
	Year       int    `form:"year" validate:"omitempty,gte=2000,lte=2100"`
	Resolution int    `form:"resolution,default=7"`
	Rings      int    `form:"rings,default=2"`
	Format     string `form:"format,default=heatmap"`
	MinBand    string `form:"band" validate:"omitempty,oneof=low moderate high critical"`
}

// HazardRequest DTO query-параметров показателей угроз
type HazardRequest struct {
	Scenario   string `form:"scenario" validate:"omitempty,max=16"`
	HazardType string `form:"hazard_type" validate:"omitempty,max=32"`
	Year       int    `form:"year" validate:"omitempty,gte=2000,lte=2100"`
}

// ComparisonRequest DTO для сравнения сценариев
// @Description DTO запроса сравнения сценариев
type ComparisonRequest struct {
	Location  string   `json:"location" validate:"required,max=64"`
	Scenarios []string `json:"scenarios,omitempty" validate:"omitempty,max=9,dive,required"`
	Year      int      `json:"year,omitempty" validate:"omitempty,gte=2000,lte=2100"`
}

// MunicipalityListRequest DTO фильтра списка муниципалитетов
type MunicipalityListRequest struct {
	Name  string `form:"name" validate:"omitempty,max=128"`
	State string `form:"state" validate:"omitempty,len=2"`
}

// ErrorResponse DTO ошибки
// @Description Ошибка с машинным кодом
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// BandResponse DTO описания уровня риска
type BandResponse struct {
	Band models.RiskBand `json:"band"`
	Min  float64         `json:"min"`
	Max  float64         `json:"max"`
}

// RiskBandsResponse DTO справочника уровней риска и угроз
// @Description Пороги уровней риска, список угроз и сценариев
type RiskBandsResponse struct {
	Bands     []BandResponse      `json:"bands"`
	Hazards   []models.HazardType `json:"hazards"`
	Scenarios []models.Scenario   `json:"scenarios"`
}

// CacheStatsResponse DTO статистики кеша
// @Description Статистика кеша результатов
type CacheStatsResponse struct {
	Backend string  `json:"backend"`
	Entries int     `json:"entries"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// CacheClearResponse DTO результата очистки кеша
type CacheClearResponse struct {
	Removed int `json:"removed"`
}
