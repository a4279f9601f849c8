package repository

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/service"
)

// MemoryMunicipalityRepository - реестр муниципалитетов в памяти, только для чтения
type MemoryMunicipalityRepository struct {
	byCode map[string]models.Municipality
	codes  []string
}

// NewMemoryMunicipalityRepository создаёт реестр из встроенного набора муниципалитетов
func NewMemoryMunicipalityRepository() service.MunicipalityRepository {
	return newMemoryRepository(seedMunicipalities)
}

func newMemoryRepository(items []models.Municipality) *MemoryMunicipalityRepository {
	r := &MemoryMunicipalityRepository{byCode: make(map[string]models.Municipality, len(items))}
	for _, m := range items {
		r.byCode[m.AreaCode] = m
		r.codes = append(r.codes, m.AreaCode)
	}
	sort.Strings(r.codes)
	return r
}

// GetByCode возвращает муниципалитет по коду IBGE
func (r *MemoryMunicipalityRepository) GetByCode(_ context.Context, code string) (*models.Municipality, error) {
	m, ok := r.byCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: municipality %s not found", models.ErrUnknownLocation, code)
	}
	return &m, nil
}

// Nearest возвращает ближайший муниципалитет в пределах maxDistanceKm
func (r *MemoryMunicipalityRepository) Nearest(_ context.Context, lat, lon, maxDistanceKm float64) (*models.Municipality, error) {
	var (
		best     *models.Municipality
		bestDist = math.Inf(1)
	)
	for _, code := range r.codes {
		m := r.byCode[code]
		if d := distanceKm(lat, lon, m.Latitude, m.Longitude); d <= maxDistanceKm && d < bestDist {
			best, bestDist = &m, d
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no municipality within %.0f km of (%f, %f)", models.ErrUnknownLocation, maxDistanceKm, lat, lon)
	}
	return best, nil
}

// List возвращает муниципалитеты, упорядоченные по коду
func (r *MemoryMunicipalityRepository) List(_ context.Context, filter models.MunicipalityFilter) ([]*models.Municipality, error) {
	name := strings.ToLower(filter.Name)
	state := strings.ToUpper(filter.State)

	out := make([]*models.Municipality, 0, len(r.codes))
	for _, code := range r.codes {
		m := r.byCode[code]
		if name != "" && !strings.Contains(strings.ToLower(m.Name), name) {
			continue
		}
		if state != "" && m.State != state {
			continue
		}
		out = append(out, &m)
	}
	return out, nil
}

// distanceKm - расстояние по большому кругу в километрах
func distanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2}) / 1000
}
