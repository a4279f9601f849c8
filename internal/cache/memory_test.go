package cache

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_LazyExpiryAndHitCount(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemoryBackend(clock, 0)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute))
	_, ok, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	_, _, _ = m.Get(ctx, "a")
	assert.Equal(t, int64(2), m.HitCount("a"))

	clock.Advance(time.Minute)
	_, ok, err = m.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, m.HitCount("a"))
}

func TestMemoryBackend_ZeroTTLNeverExpires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemoryBackend(clock, 0)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), 0))
	clock.Advance(24 * time.Hour)
	_, ok, _ := m.Get(ctx, "a")
	assert.True(t, ok)
}

func TestMemoryBackend_EvictsOldest(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemoryBackend(clock, 2)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "first", []byte("1"), time.Hour))
	clock.Advance(time.Second)
	require.NoError(t, m.Set(ctx, "second", []byte("2"), time.Hour))
	clock.Advance(time.Second)
	require.NoError(t, m.Set(ctx, "third", []byte("3"), time.Hour))

	_, ok, _ := m.Get(ctx, "first")
	assert.False(t, ok)
	n, _ := m.Len(ctx)
	assert.Equal(t, 2, n)
}

func TestMemoryBackend_Sweep(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemoryBackend(clock, 0)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, m.Set(ctx, "long", []byte("2"), time.Hour))
	clock.Advance(2 * time.Second)

	assert.Equal(t, 1, m.Sweep())
	n, _ := m.Len(ctx)
	assert.Equal(t, 1, n)
}

func TestSweeper(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewMemoryBackend(clock, 0)
	require.NoError(t, m.Set(context.Background(), "k", []byte("1"), time.Second))
	clock.Advance(time.Minute)

	_, err := NewSweeper(m, "not a schedule", observability.NewMetricsForTesting(), testLogger())
	assert.Error(t, err)

	s, err := NewSweeper(m, "@every 1m", observability.NewMetricsForTesting(), testLogger())
	require.NoError(t, err)
	s.run()

	n, _ := m.Len(context.Background())
	assert.Zero(t, n)
	s.Start()
	s.Stop()
}
