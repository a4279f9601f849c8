package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Требует запущенного Redis: REDIS_TEST_ADDR=localhost:6379
func TestRedisBackend_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx := context.Background()
	r := NewRedisBackend(client, "test:"+uuid.NewString()+":")

	_, ok, err := r.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Set(ctx, "a", []byte(`{"score":1}`), time.Minute))
	require.NoError(t, r.Set(ctx, "b", []byte(`{"score":2}`), time.Minute))

	data, ok, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"score":1}`, string(data))

	n, err := r.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	removed, err := r.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

func TestRedisBackend_UnavailableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	r := NewRedisBackend(client, "x:")
	_, _, err := r.Get(context.Background(), "k")
	require.Error(t, err)
	assert.ErrorContains(t, err, "cache backend unavailable")
}
