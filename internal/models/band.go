package models

import (
	"fmt"
	"math"
)

// RiskBand - дискретный уровень риска. Пороги - часть внешнего контракта.
type RiskBand string

const (
	BandLow      RiskBand = "low"
	BandModerate RiskBand = "moderate"
	BandHigh     RiskBand = "high"
	BandCritical RiskBand = "critical"
)

// Пороги уровней риска
const (
	ModerateThreshold = 0.3
	HighThreshold     = 0.5
	CriticalThreshold = 0.7
)

// AllBands в порядке возрастания
var AllBands = []RiskBand{BandLow, BandModerate, BandHigh, BandCritical}

// BandFor возвращает уровень для значения риска
func BandFor(score float64) RiskBand {
	switch {
	case score >= CriticalThreshold:
		return BandCritical
	case score >= HighThreshold:
		return BandHigh
	case score >= ModerateThreshold:
		return BandModerate
	default:
		return BandLow
	}
}

// Threshold - нижняя граница уровня
func (b RiskBand) Threshold() float64 {
	switch b {
	case BandCritical:
		return CriticalThreshold
	case BandHigh:
		return HighThreshold
	case BandModerate:
		return ModerateThreshold
	default:
		return 0
	}
}

// ParseRiskBand разбирает минимальный уровень фильтра. Пустая строка означает low, то есть все ячейки.
func ParseRiskBand(s string) (RiskBand, error) {
	if s == "" {
		return BandLow, nil
	}
	for _, b := range AllBands {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBand, s)
}

// Clamp01 ограничивает значение отрезком [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
