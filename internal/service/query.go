package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shenikar/climate_risk_grid/internal/models"
)

var ibgeCodePattern = regexp.MustCompile(`^\d{7}$`)

// locationQuery - разобранный параметр location: либо код IBGE, либо точка
type locationQuery struct {
	code     string
	lat, lon float64
}

func (q locationQuery) isPoint() bool { return q.code == "" }

// parseLocationQuery принимает "3550308" или "-23.5505,-46.6333"
func parseLocationQuery(s string) (locationQuery, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return locationQuery{}, fmt.Errorf("%w: location is required", models.ErrInvalidLocation)
	}
	if ibgeCodePattern.MatchString(s) {
		return locationQuery{code: s}, nil
	}

	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return locationQuery{}, fmt.Errorf("%w: expected IBGE code or \"lat,lon\", got %q", models.ErrInvalidLocation, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return locationQuery{}, fmt.Errorf("%w: bad latitude %q", models.ErrInvalidLocation, latStr)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return locationQuery{}, fmt.Errorf("%w: bad longitude %q", models.ErrInvalidLocation, lonStr)
	}
	if err := models.ValidateCoordinates(lat, lon); err != nil {
		return locationQuery{}, err
	}
	return locationQuery{lat: lat, lon: lon}, nil
}

// parseScenario разбирает сценарий, пустая строка означает moderate
func parseScenario(s string) (models.Scenario, error) {
	if strings.TrimSpace(s) == "" {
		return models.ScenarioModerate, nil
	}
	return models.ParseScenario(s)
}

// parseScenarios разбирает список сценариев для сравнения.
// Пустой список - все сценарии, повторы запрещены.
func parseScenarios(in []string) ([]models.Scenario, error) {
	if len(in) == 0 {
		return append([]models.Scenario(nil), models.AllScenarios...), nil
	}
	out := make([]models.Scenario, 0, len(in))
	seen := make(map[models.Scenario]bool, len(in))
	for _, raw := range in {
		s, err := models.ParseScenario(raw)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			return nil, fmt.Errorf("%w: duplicate scenario %q", models.ErrInvalidScenario, s)
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}
