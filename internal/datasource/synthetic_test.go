package datasource

import (
	"context"
	"testing"

	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var saoPaulo = models.Location{Latitude: -23.5505, Longitude: -46.6333, AreaCode: "3550308"}

func TestSyntheticSource_Deterministic(t *testing.T) {
	src := NewSyntheticSource()
	ctx := context.Background()

	for _, h := range models.AllHazards {
		first, err := src.FetchBaseline(ctx, saoPaulo, h)
		require.NoError(t, err)
		second, err := src.FetchBaseline(ctx, saoPaulo, h)
		require.NoError(t, err)

		assert.Equal(t, first, second, h)
		assert.Equal(t, models.QualitySynthetic, first.Quality)
		assert.Greater(t, first.Value, 0.0)
		assert.LessOrEqual(t, first.Value, 1.0)
	}
}

func TestSyntheticSource_RegionalPatterns(t *testing.T) {
	src := NewSyntheticSource()
	ctx := context.Background()

	// Манаус - север, Форталеза - северо-восток
	manaus := models.Location{Latitude: -3.119, Longitude: -60.0217}
	fortaleza := models.Location{Latitude: -3.7319, Longitude: -38.5267}

	north, err := src.FetchBaseline(ctx, manaus, models.HazardFlood)
	require.NoError(t, err)
	assert.InDelta(t, 0.45, north.Value, 0.15)

	coastal, err := src.FetchBaseline(ctx, fortaleza, models.HazardCoastalInundation)
	require.NoError(t, err)
	inland, err := src.FetchBaseline(ctx, manaus, models.HazardCoastalInundation)
	require.NoError(t, err)
	assert.Greater(t, coastal.Value, inland.Value)
}

func TestSyntheticSource_UnknownHazard(t *testing.T) {
	_, err := NewSyntheticSource().FetchBaseline(context.Background(), saoPaulo, models.HazardType("wildfire"))
	assert.Error(t, err)
}

func TestUnitFromHash_Range(t *testing.T) {
	assert.Equal(t, -1.0, unitFromHash(0))
	assert.Less(t, unitFromHash(^uint64(0)), 1.0)
	assert.Greater(t, unitFromHash(^uint64(0)), 0.99)
}
