package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var saoPaulo = &models.Municipality{
	Location:  models.Location{AreaCode: "3550308", Name: "São Paulo", Latitude: -23.5505, Longitude: -46.6333},
	State:     "SP",
	StateName: "São Paulo",
	Demographics: models.Demographics{
		Population: 11451245, CriticalInfrastructure: 450, VulnerablePopulationPct: 0.28,
		GDPPerCapitaBRL: 52796, GreenAreaPerCapitaM2: 13.2,
	},
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func newTestRegistry(t *testing.T, allowSynthetic bool) (*LocationRegistry, *mocks.MockMunicipalityRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockMunicipalityRepository(ctrl)
	return NewLocationRegistry(repoMock, allowSynthetic, 30, testLogger()), repoMock
}

func TestRegistryResolve_Code(t *testing.T) {
	registry, repoMock := newTestRegistry(t, false)
	ctx := context.Background()

	repoMock.EXPECT().GetByCode(ctx, "3550308").Return(saoPaulo, nil)

	loc, err := registry.Resolve(ctx, "3550308")
	require.NoError(t, err)
	assert.Equal(t, "ibge:3550308", loc.Key())
	assert.Equal(t, "São Paulo", loc.Name)
}

func TestRegistryResolve_UnknownCode(t *testing.T) {
	registry, repoMock := newTestRegistry(t, true)
	ctx := context.Background()

	repoMock.EXPECT().GetByCode(ctx, "9999999").Return(nil, models.ErrUnknownLocation)

	_, err := registry.Resolve(ctx, "9999999")
	assert.ErrorIs(t, err, models.ErrUnknownLocation)
}

func TestRegistryResolve_InvalidInput(t *testing.T) {
	registry, _ := newTestRegistry(t, true)
	ctx := context.Background()

	for _, q := range []string{"", "355030", "abc", "91,10", "-23.5,-200", "lat,lon"} {
		_, err := registry.Resolve(ctx, q)
		assert.ErrorIs(t, err, models.ErrInvalidLocation, q)
	}
}

func TestRegistryResolve_PointSnapsToMunicipality(t *testing.T) {
	registry, repoMock := newTestRegistry(t, false)
	ctx := context.Background()

	repoMock.EXPECT().Nearest(ctx, -23.56, -46.64, 30.0).Return(saoPaulo, nil)

	loc, err := registry.Resolve(ctx, "-23.56, -46.64")
	require.NoError(t, err)
	assert.Equal(t, "ibge:3550308", loc.Key())
}

func TestRegistryResolve_PointOutsideRegistry(t *testing.T) {
	ctx := context.Background()

	strict, repoMock := newTestRegistry(t, false)
	repoMock.EXPECT().Nearest(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrUnknownLocation)
	_, err := strict.Resolve(ctx, "-10.123456,-55.5")
	assert.ErrorIs(t, err, models.ErrUnknownLocation)

	lenient, repoMock := newTestRegistry(t, true)
	repoMock.EXPECT().Nearest(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrUnknownLocation)
	loc, err := lenient.Resolve(ctx, "-10.123456,-55.5")
	require.NoError(t, err)
	assert.Equal(t, "pt:-10.12346,-55.50000", loc.Key())
	assert.Equal(t, -10.12346, loc.Latitude)
}

func TestRegistryResolve_RepositoryFailure(t *testing.T) {
	registry, repoMock := newTestRegistry(t, true)
	ctx := context.Background()

	repoMock.EXPECT().Nearest(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := registry.Resolve(ctx, "-10,-55")
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrUnknownLocation)
}

func TestRegistryDemographics(t *testing.T) {
	ctx := context.Background()

	registry, repoMock := newTestRegistry(t, false)
	repoMock.EXPECT().GetByCode(ctx, "3550308").Return(saoPaulo, nil)
	d, err := registry.Demographics(ctx, saoPaulo.Location)
	require.NoError(t, err)
	assert.Equal(t, saoPaulo.Demographics, d)

	point := models.Location{Latitude: -10, Longitude: -55}
	_, err = registry.Demographics(ctx, point)
	assert.ErrorIs(t, err, models.ErrUnknownLocation)

	lenient, _ := newTestRegistry(t, true)
	first, err := lenient.Demographics(ctx, point)
	require.NoError(t, err)
	second, err := lenient.Demographics(ctx, point)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.Population, int64(50000))
	assert.LessOrEqual(t, first.VulnerablePopulationPct, 0.45)
}

func TestParseScenarios(t *testing.T) {
	all, err := parseScenarios(nil)
	require.NoError(t, err)
	assert.Equal(t, models.AllScenarios, all)

	got, err := parseScenarios([]string{"rcp85", "low"})
	require.NoError(t, err)
	assert.Equal(t, []models.Scenario{models.ScenarioHigh, models.ScenarioLow}, got)

	_, err = parseScenarios([]string{"high", "ssp585"})
	assert.ErrorIs(t, err, models.ErrInvalidScenario)

	_, err = parseScenarios([]string{"extreme"})
	assert.ErrorIs(t, err, models.ErrInvalidScenario)
}
