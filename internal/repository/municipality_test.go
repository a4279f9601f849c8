package repository

import (
	"context"
	"os"
	"testing"

	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Интеграционный тест против базы с применёнными миграциями
func newTestPostgresRepository(t *testing.T) *MunicipalityRepository {
	t.Helper()
	url := os.Getenv("DATABASE_TEST_URL")
	if url == "" {
		t.Skip("DATABASE_TEST_URL not set")
	}
	pool, err := postgres.NewPostgresDB(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return &MunicipalityRepository{db: pool}
}

func TestMunicipalityRepository_Postgres(t *testing.T) {
	repo := newTestPostgresRepository(t)
	ctx := context.Background()

	m, err := repo.GetByCode(ctx, "3550308")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", m.Name)
	assert.InDelta(t, -23.5505, m.Latitude, 1e-4)

	_, err = repo.GetByCode(ctx, "0000000")
	assert.ErrorIs(t, err, models.ErrUnknownLocation)

	near, err := repo.Nearest(ctx, -23.56, -46.65, 30)
	require.NoError(t, err)
	assert.Equal(t, "3550308", near.AreaCode)

	_, err = repo.Nearest(ctx, -30, -20, 30)
	assert.ErrorIs(t, err, models.ErrUnknownLocation)

	list, err := repo.List(ctx, models.MunicipalityFilter{State: "RJ"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "3304557", list[0].AreaCode)
}
