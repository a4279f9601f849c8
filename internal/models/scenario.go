package models

import (
	"fmt"
	"strings"
)

// Scenario - траектория выбросов
type Scenario string

const (
	ScenarioLow      Scenario = "low"
	ScenarioModerate Scenario = "moderate"
	ScenarioHigh     Scenario = "high"
)

// AllScenarios в порядке возрастания тяжести
var AllScenarios = []Scenario{ScenarioLow, ScenarioModerate, ScenarioHigh}

var scenarioAliases = map[string]Scenario{
	"low":      ScenarioLow,
	"rcp26":    ScenarioLow,
	"ssp126":   ScenarioLow,
	"moderate": ScenarioModerate,
	"rcp45":    ScenarioModerate,
	"ssp245":   ScenarioModerate,
	"high":     ScenarioHigh,
	"rcp85":    ScenarioHigh,
	"ssp585":   ScenarioHigh,
}

// ParseScenario принимает каноническое имя или псевдонимы RCP/SSP
func ParseScenario(s string) (Scenario, error) {
	if sc, ok := scenarioAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return sc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidScenario, s)
}

// Validate проверяет, что сценарий входит в закрытое множество
func (s Scenario) Validate() error {
	switch s {
	case ScenarioLow, ScenarioModerate, ScenarioHigh:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidScenario, string(s))
}

// Severity - множитель тяжести сценария
func (s Scenario) Severity() float64 {
	switch s {
	case ScenarioLow:
		return 0.6
	case ScenarioHigh:
		return 1.6
	default:
		return 1.0
	}
}

// Acceleration - прирост риска к горизонту относительно базового уровня
func (s Scenario) Acceleration(h Horizon) float64 {
	switch h {
	case Horizon2030:
		return 0.15 * s.Severity()
	case Horizon2050:
		return 0.45 * s.Severity()
	default:
		return 0
	}
}

// Horizon - горизонт прогноза
type Horizon string

const (
	HorizonCurrent Horizon = "current"
	Horizon2030    Horizon = "2030"
	Horizon2050    Horizon = "2050"
)

// HorizonForYear сопоставляет опорный год горизонту прогноза
func HorizonForYear(year int) Horizon {
	switch {
	case year < 2030:
		return HorizonCurrent
	case year < 2050:
		return Horizon2030
	default:
		return Horizon2050
	}
}
