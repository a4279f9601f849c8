package repository

import (
	"context"
	"testing"

	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_GetByCode(t *testing.T) {
	repo := NewMemoryMunicipalityRepository()

	m, err := repo.GetByCode(context.Background(), "3550308")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", m.Name)
	assert.Equal(t, "SP", m.State)
	assert.Positive(t, m.Demographics.Population)

	_, err = repo.GetByCode(context.Background(), "0000000")
	assert.ErrorIs(t, err, models.ErrUnknownLocation)
}

func TestMemoryRepository_GetByCodeReturnsCopy(t *testing.T) {
	repo := NewMemoryMunicipalityRepository()

	m, err := repo.GetByCode(context.Background(), "3304557")
	require.NoError(t, err)
	m.Name = "changed"

	again, err := repo.GetByCode(context.Background(), "3304557")
	require.NoError(t, err)
	assert.Equal(t, "Rio de Janeiro", again.Name)
}

func TestMemoryRepository_Nearest(t *testing.T) {
	repo := NewMemoryMunicipalityRepository()

	// Точка в паре километров от центра Сан-Паулу
	m, err := repo.Nearest(context.Background(), -23.56, -46.65, 30)
	require.NoError(t, err)
	assert.Equal(t, "3550308", m.AreaCode)

	// Открытый океан
	_, err = repo.Nearest(context.Background(), -30, -20, 30)
	assert.ErrorIs(t, err, models.ErrUnknownLocation)
}

func TestMemoryRepository_ListFilter(t *testing.T) {
	repo := NewMemoryMunicipalityRepository()
	ctx := context.Background()

	all, err := repo.List(ctx, models.MunicipalityFilter{})
	require.NoError(t, err)
	assert.Len(t, all, len(seedMunicipalities))
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].AreaCode, all[i].AreaCode)
	}

	bySubstring, err := repo.List(ctx, models.MunicipalityFilter{Name: "rio"})
	require.NoError(t, err)
	require.Len(t, bySubstring, 1)
	assert.Equal(t, "3304557", bySubstring[0].AreaCode)

	byState, err := repo.List(ctx, models.MunicipalityFilter{State: "pr"})
	require.NoError(t, err)
	require.Len(t, byState, 1)
	assert.Equal(t, "Curitiba", byState[0].Name)
}

func TestDistanceKm(t *testing.T) {
	// Сан-Паулу - Рио-де-Жанейро примерно 360 км
	d := distanceKm(-23.5505, -46.6333, -22.9068, -43.1729)
	assert.InDelta(t, 360, d, 10)
	assert.Zero(t, distanceKm(1, 1, 1, 1))

	// порядок аргументов lat, lon: перестановка меняет результат
	assert.InDelta(t, 111, distanceKm(0, 0, 1, 0), 1)
	assert.InDelta(t, 111, distanceKm(0, 0, 0, 1), 1)
	assert.Greater(t, distanceKm(-23.5505, -46.6333, -46.6333, -23.5505), 2000.0)
}
