package grid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/h3-go/v4"
)

var saoPaulo = models.Location{Latitude: -23.5505, Longitude: -46.6333, AreaCode: "3550308"}

func newTestService() *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(observability.NewMetricsForTesting(), logger)
}

func fixedAnchor(score float64, calls *int) AnchorFunc {
	return func(_ context.Context, loc models.Location, scenario models.Scenario, _ int) (*models.RiskAssessment, error) {
		*calls++
		return &models.RiskAssessment{
			Location:         loc,
			Scenario:         scenario,
			Horizon:          models.Horizon2030,
			OverallRiskScore: score,
			RiskBand:         models.BandFor(score),
			Hazards: []models.HazardIndicator{
				{HazardType: models.HazardFlood, CurrentRisk: 0.5, ProjectedRisk2030: score, ProjectedRisk2050: 1},
				{HazardType: models.HazardDrought, CurrentRisk: 0.1, ProjectedRisk2030: 0.12, ProjectedRisk2050: 0.2},
			},
		}, nil
	}
}

func request(res, rings int) Request {
	return Request{Location: saoPaulo, Resolution: res, RingCount: rings, Scenario: models.ScenarioModerate, Year: 2030}
}

func TestBuildGrid_CellCountAndOrder(t *testing.T) {
	var calls int
	g, err := newTestService().BuildGrid(context.Background(), request(7, 2), fixedAnchor(0.6, &calls))
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "anchor is assessed exactly once")
	require.Len(t, g.Cells, 19)
	assert.Equal(t, CellCount(2), len(g.Cells))

	seen := map[string]bool{}
	for i, c := range g.Cells {
		assert.False(t, seen[c.H3Index], "duplicate cell %s", c.H3Index)
		seen[c.H3Index] = true
		assert.Equal(t, 7, c.Resolution)
		if i > 0 {
			prev := g.Cells[i-1]
			ordered := prev.Distance < c.Distance || (prev.Distance == c.Distance && prev.H3Index < c.H3Index)
			assert.True(t, ordered, "cells must be sorted by distance then index")
		}
	}

	center := g.Cells[0]
	assert.Equal(t, 0, center.Distance)
	assert.Equal(t, g.CenterCell, center.H3Index)
	assert.Equal(t, 0.6, center.RiskScore)
	assert.Equal(t, 0.6, center.Hazards[models.HazardFlood])
	assert.Equal(t, "ibge:3550308", g.LocationKey)
	assert.Equal(t, models.Horizon2030, g.Horizon)
}

func TestBuildGrid_AdjacentCellsAreCoherent(t *testing.T) {
	for _, anchor := range []float64{0.05, 0.5, 0.95, 1} {
		var calls int
		g, err := newTestService().BuildGrid(context.Background(), request(8, 5), fixedAnchor(anchor, &calls))
		require.NoError(t, err)
		require.Len(t, g.Cells, 91)

		byIndex := make(map[string]models.GridCell, len(g.Cells))
		for _, c := range g.Cells {
			byIndex[c.H3Index] = c
		}
		for _, c := range g.Cells {
			cell := h3.Cell(h3.IndexFromString(c.H3Index))
			for _, n := range cell.GridDisk(1) {
				neighbor, ok := byIndex[n.String()]
				if !ok {
					continue
				}
				assert.LessOrEqual(t, math.Abs(c.RiskScore-neighbor.RiskScore), 0.15,
					"anchor %.2f: %s vs %s", anchor, c.H3Index, neighbor.H3Index)
			}
		}
	}
}

func TestBuildGrid_HeatmapIsByteIdentical(t *testing.T) {
	svc := newTestService()
	var calls int

	render := func() []byte {
		g, err := svc.BuildGrid(context.Background(), request(7, 3), fixedAnchor(0.45, &calls))
		require.NoError(t, err)
		e, err := Render(g, models.FormatHeatmap)
		require.NoError(t, err)
		return e.Payload
	}

	first, second := render(), render()
	assert.True(t, bytes.Equal(first, second))

	var heatmap map[string]float64
	require.NoError(t, json.Unmarshal(first, &heatmap))
	assert.Len(t, heatmap, 37)
}

func TestBuildGrid_InvalidParameters(t *testing.T) {
	svc := newTestService()
	var calls int
	anchor := fixedAnchor(0.5, &calls)

	_, err := svc.BuildGrid(context.Background(), request(4, 2), anchor)
	assert.ErrorIs(t, err, models.ErrInvalidResolution)

	_, err = svc.BuildGrid(context.Background(), request(10, 2), anchor)
	assert.ErrorIs(t, err, models.ErrInvalidResolution)

	_, err = svc.BuildGrid(context.Background(), request(7, 0), anchor)
	assert.ErrorIs(t, err, models.ErrInvalidRingCount)

	_, err = svc.BuildGrid(context.Background(), request(7, 6), anchor)
	assert.ErrorIs(t, err, models.ErrInvalidRingCount)

	req := request(7, 2)
	req.Scenario = "rcp60"
	_, err = svc.BuildGrid(context.Background(), req, anchor)
	assert.ErrorIs(t, err, models.ErrInvalidScenario)

	assert.Zero(t, calls, "validation happens before the anchor is assessed")
}

func TestBuildGrid_AnchorErrorIsPropagated(t *testing.T) {
	anchorErr := errors.New("engine: could not resolve demographics")
	_, err := newTestService().BuildGrid(context.Background(), request(7, 1),
		func(context.Context, models.Location, models.Scenario, int) (*models.RiskAssessment, error) {
			return nil, anchorErr
		})
	assert.Same(t, anchorErr, err)
}

func TestRender_GeoJSON(t *testing.T) {
	var calls int
	g, err := newTestService().BuildGrid(context.Background(), request(6, 1), fixedAnchor(0.72, &calls))
	require.NoError(t, err)

	e, err := Render(g, models.FormatGeoJSON)
	require.NoError(t, err)
	assert.Equal(t, models.FormatGeoJSON, e.Format)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string          `json:"type"`
				Coordinates [][][2]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(e.Payload, &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 7)

	first := fc.Features[0]
	assert.Equal(t, "Polygon", first.Geometry.Type)
	ring := first.Geometry.Coordinates[0]
	require.GreaterOrEqual(t, len(ring), 7)
	assert.Equal(t, ring[0], ring[len(ring)-1], "polygon ring must be closed")
	assert.Equal(t, g.CenterCell, first.Properties["h3_index"])
	assert.Equal(t, "critical", first.Properties["risk_band"])

	_, err = Render(g, models.GridFormat("kml"))
	assert.ErrorIs(t, err, models.ErrInvalidFormat)
}

func TestDecayAndPerturbationBounds(t *testing.T) {
	assert.Equal(t, 1.0, Decay(0))
	assert.InDelta(t, 0.92, Decay(1), 1e-12)
	assert.Equal(t, 0.6, Decay(5))
	assert.Equal(t, 0.6, Decay(50))

	center := h3.LatLngToCell(h3.NewLatLng(saoPaulo.Latitude, saoPaulo.Longitude), 9)
	for _, c := range center.GridDisk(5) {
		p := Perturbation(c)
		assert.GreaterOrEqual(t, p, -0.035)
		assert.Less(t, p, 0.035)
		assert.Equal(t, p, Perturbation(c))
	}
}

func TestStats(t *testing.T) {
	cells := []models.GridCell{
		{RiskScore: 0.2, RiskBand: models.BandLow},
		{RiskScore: 0.4, RiskBand: models.BandModerate},
		{RiskScore: 0.6, RiskBand: models.BandHigh},
		{RiskScore: 0.8, RiskBand: models.BandCritical},
	}
	s := Stats(cells)
	assert.Equal(t, 4, s.CellCount)
	assert.Equal(t, 0.2, s.MinRisk)
	assert.Equal(t, 0.8, s.MaxRisk)
	assert.InDelta(t, 0.5, s.AvgRisk, 1e-12)
	assert.Equal(t, 1, s.LowCells)
	assert.Equal(t, 1, s.CriticalCells)

	assert.Equal(t, models.GridStats{}, Stats(nil))
}

func TestFilterByBand(t *testing.T) {
	cells := []models.GridCell{
		{H3Index: "a", RiskScore: 0.2, RiskBand: models.BandLow},
		{H3Index: "b", RiskScore: 0.55, RiskBand: models.BandHigh},
		{H3Index: "c", RiskScore: 0.7, RiskBand: models.BandCritical},
		{H3Index: "d", RiskScore: 0.91, RiskBand: models.BandCritical},
	}
	g := &models.Grid{Cells: cells, Stats: Stats(cells)}

	assert.Same(t, g, FilterByBand(g, models.BandLow))

	critical := FilterByBand(g, models.BandCritical)
	require.Len(t, critical.Cells, 2)
	assert.Equal(t, "c", critical.Cells[0].H3Index)
	assert.Equal(t, "d", critical.Cells[1].H3Index)
	assert.Equal(t, 4, critical.Stats.CellCount)
	assert.Len(t, g.Cells, 4)

	e, err := Render(critical, models.FormatHeatmap)
	require.NoError(t, err)
	var heatmap map[string]float64
	require.NoError(t, json.Unmarshal(e.Payload, &heatmap))
	assert.Equal(t, map[string]float64{"c": 0.7, "d": 0.91}, heatmap)

	assert.Len(t, FilterByBand(g, models.BandHigh).Cells, 3)
}
