package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario_Aliases(t *testing.T) {
	cases := map[string]Scenario{
		"low":      ScenarioLow,
		"RCP26":    ScenarioLow,
		"ssp126":   ScenarioLow,
		"moderate": ScenarioModerate,
		" rcp45 ":  ScenarioModerate,
		"high":     ScenarioHigh,
		"ssp585":   ScenarioHigh,
	}
	for in, want := range cases {
		got, err := ParseScenario(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseScenario_Invalid(t *testing.T) {
	_, err := ParseScenario("apocalyptic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidScenario))
	assert.Error(t, Scenario("rcp60").Validate())
}

func TestScenarioSeverityAndAcceleration(t *testing.T) {
	assert.Equal(t, 0.6, ScenarioLow.Severity())
	assert.Equal(t, 1.0, ScenarioModerate.Severity())
	assert.Equal(t, 1.6, ScenarioHigh.Severity())

	assert.InDelta(t, 0.15, ScenarioModerate.Acceleration(Horizon2030), 1e-12)
	assert.InDelta(t, 0.72, ScenarioHigh.Acceleration(Horizon2050), 1e-12)
	assert.Zero(t, ScenarioHigh.Acceleration(HorizonCurrent))
}

func TestHorizonForYear(t *testing.T) {
	assert.Equal(t, HorizonCurrent, HorizonForYear(2026))
	assert.Equal(t, Horizon2030, HorizonForYear(2030))
	assert.Equal(t, Horizon2030, HorizonForYear(2049))
	assert.Equal(t, Horizon2050, HorizonForYear(2050))
	assert.Equal(t, Horizon2050, HorizonForYear(2100))
}

func TestBandFor_Thresholds(t *testing.T) {
	assert.Equal(t, BandLow, BandFor(0))
	assert.Equal(t, BandLow, BandFor(0.2999))
	assert.Equal(t, BandModerate, BandFor(0.3))
	assert.Equal(t, BandModerate, BandFor(0.4999))
	assert.Equal(t, BandHigh, BandFor(0.5))
	assert.Equal(t, BandHigh, BandFor(0.6999))
	assert.Equal(t, BandCritical, BandFor(0.7))
	assert.Equal(t, BandCritical, BandFor(1))
}

func TestLocationKey(t *testing.T) {
	withCode := Location{Latitude: -23.5505, Longitude: -46.6333, AreaCode: "3550308"}
	assert.Equal(t, "ibge:3550308", withCode.Key())

	pt, err := NewPointLocation(-23.5505123, -46.6333987)
	require.NoError(t, err)
	assert.Equal(t, "pt:-23.55051,-46.63340", pt.Key())
	assert.Equal(t, -23.55051, pt.Latitude)
}

func TestNewPointLocation_OutOfRange(t *testing.T) {
	_, err := NewPointLocation(95, 10)
	assert.True(t, errors.Is(err, ErrInvalidLocation))

	_, err = NewPointLocation(10, -181)
	assert.True(t, errors.Is(err, ErrInvalidLocation))
}

func TestParseGridFormat(t *testing.T) {
	f, err := ParseGridFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatHeatmap, f)

	f, err = ParseGridFormat("geojson")
	require.NoError(t, err)
	assert.Equal(t, FormatGeoJSON, f)

	_, err = ParseGridFormat("kml")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "invalid_ring_count", ErrorCode(ErrInvalidRingCount))
	assert.Equal(t, "unknown_location", ErrorCode(errors.Join(errors.New("wrap"), ErrUnknownLocation)))
	assert.Empty(t, ErrorCode(errors.New("boom")))
}

func TestParseHazardType(t *testing.T) {
	h, err := ParseHazardType("heat_stress")
	require.NoError(t, err)
	assert.Equal(t, HazardHeatStress, h)

	_, err = ParseHazardType("hail")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidHazard))
	assert.Equal(t, "invalid_hazard", ErrorCode(err))
}

func TestParseRiskBand(t *testing.T) {
	b, err := ParseRiskBand("")
	require.NoError(t, err)
	assert.Equal(t, BandLow, b)
	assert.Zero(t, b.Threshold())

	b, err = ParseRiskBand("critical")
	require.NoError(t, err)
	assert.Equal(t, CriticalThreshold, b.Threshold())
	assert.Equal(t, HighThreshold, BandHigh.Threshold())

	_, err = ParseRiskBand("extreme")
	assert.Equal(t, "invalid_band", ErrorCode(err))
}
