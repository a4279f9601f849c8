package models

import (
	"fmt"
	"math"
)

// Location - разрешённая точка оценки риска. После разрешения не изменяется.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AreaCode  string  `json:"area_code,omitempty"` // код IBGE муниципалитета
	Name      string  `json:"name,omitempty"`
}

// coordPrecision - количество знаков после запятой для нормализации координат
const coordPrecision = 5

// NewPointLocation создаёт локацию без кода территории с нормализованными координатами
func NewPointLocation(lat, lon float64) (Location, error) {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return Location{}, err
	}
	return Location{
		Latitude:  RoundCoord(lat),
		Longitude: RoundCoord(lon),
	}, nil
}

// Key возвращает детерминированный идентификатор локации для ключей кеша
func (l Location) Key() string {
	if l.AreaCode != "" {
		return "ibge:" + l.AreaCode
	}
	return fmt.Sprintf("pt:%.*f,%.*f", coordPrecision, l.Latitude, coordPrecision, l.Longitude)
}

// ValidateCoordinates проверяет диапазоны WGS84
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: coordinates out of range (%f, %f)", ErrInvalidLocation, lat, lon)
	}
	return nil
}

// RoundCoord округляет координату до точности ключа
func RoundCoord(v float64) float64 {
	p := math.Pow(10, coordPrecision)
	return math.Round(v*p) / p
}

// Demographics - статические демографические и инфраструктурные данные территории
type Demographics struct {
	Population              int64   `json:"population"`
	CriticalInfrastructure  int     `json:"critical_infrastructure"`
	VulnerablePopulationPct float64 `json:"vulnerable_population_pct"`
	GDPPerCapitaBRL         float64 `json:"gdp_per_capita_brl"`
	GreenAreaPerCapitaM2    float64 `json:"green_area_per_capita_m2"`
}

// Municipality - запись реестра муниципалитетов
type Municipality struct {
	Location
	State        string       `json:"state"`
	StateName    string       `json:"state_name,omitempty"`
	AreaKm2      float64      `json:"area_km2,omitempty"`
	Demographics Demographics `json:"demographics"`
}

// MunicipalityFilter - фильтр списка муниципалитетов. Пустые поля не ограничивают выборку.
type MunicipalityFilter struct {
	Name  string
	State string
}
