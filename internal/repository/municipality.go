package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/service"
)

type MunicipalityRepository struct {
	db *pgxpool.Pool
}

func NewMunicipalityRepository(db *pgxpool.Pool) service.MunicipalityRepository {
	return &MunicipalityRepository{db: db}
}

const municipalityColumns = `
	ibge_code,
	name,
	state,
	state_name,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	area_km2,
	population,
	critical_infrastructure,
	vulnerable_population_pct,
	gdp_per_capita_brl,
	green_area_per_capita_m2
`

// GetByCode возвращает муниципалитет по коду IBGE
func (r *MunicipalityRepository) GetByCode(ctx context.Context, code string) (*models.Municipality, error) {
	query := `SELECT ` + municipalityColumns + ` FROM municipalities WHERE ibge_code = $1;`

	m, err := scanMunicipality(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: municipality %s not found", models.ErrUnknownLocation, code)
		}
		return nil, fmt.Errorf("failed to get municipality by code: %w", err)
	}
	return m, nil
}

// Nearest находит ближайший муниципалитет в радиусе maxDistanceKm
func (r *MunicipalityRepository) Nearest(ctx context.Context, lat, lon, maxDistanceKm float64) (*models.Municipality, error) {
	query := `
		SELECT ` + municipalityColumns + `
		FROM municipalities
		WHERE ST_DWithin(
			location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY location <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
		LIMIT 1;
	`
	m, err := scanMunicipality(r.db.QueryRow(ctx, query, lon, lat, maxDistanceKm*1000))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no municipality within %.0f km of (%f, %f)", models.ErrUnknownLocation, maxDistanceKm, lat, lon)
		}
		return nil, fmt.Errorf("failed to find nearest municipality: %w", err)
	}
	return m, nil
}

// List возвращает муниципалитеты по фильтру, упорядоченные по коду
func (r *MunicipalityRepository) List(ctx context.Context, filter models.MunicipalityFilter) ([]*models.Municipality, error) {
	query := `
		SELECT ` + municipalityColumns + `
		FROM municipalities
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
			AND ($2 = '' OR state = UPPER($2))
		ORDER BY ibge_code;
	`
	rows, err := r.db.Query(ctx, query, filter.Name, filter.State)
	if err != nil {
		return nil, fmt.Errorf("failed to list municipalities: %w", err)
	}
	defer rows.Close()

	municipalities := make([]*models.Municipality, 0)
	for rows.Next() {
		m, err := scanMunicipality(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan municipality row: %w", err)
		}
		municipalities = append(municipalities, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return municipalities, nil
}

func scanMunicipality(row pgx.Row) (*models.Municipality, error) {
	m := &models.Municipality{}
	err := row.Scan(
		&m.AreaCode,
		&m.Name,
		&m.State,
		&m.StateName,
		&m.Latitude,
		&m.Longitude,
		&m.AreaKm2,
		&m.Demographics.Population,
		&m.Demographics.CriticalInfrastructure,
		&m.Demographics.VulnerablePopulationPct,
		&m.Demographics.GDPPerCapitaBRL,
		&m.Demographics.GreenAreaPerCapitaM2,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}
